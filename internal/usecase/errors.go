package usecase


type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}


func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}


type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}


func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}


// ErrQuotaUnavailable: a recontagem de uso falhou (timeout/erro do banco).
// SelectAccount falha fechado: melhor não enviar do que estourar limite.
var ErrQuotaUnavailable = &TechnicalError{
	Code:    "QUOTA_UNAVAILABLE",
	Message: "não foi possível apurar o uso das contas; seleção abortada",
}

// ErrNoAccountAvailable: nenhuma conta do tenant passa no filtro de
// disponibilidade agora (quota estourada ou todas bloqueadas).
var ErrNoAccountAvailable = &DomainError{
	Code:    "NO_ACCOUNT_AVAILABLE",
	Message: "nenhuma conta de envio disponível para o tenant",
}

var ErrAccountNotFound = &DomainError{
	Code:    "ACCOUNT_NOT_FOUND",
	Message: "conta de envio não encontrada",
}
