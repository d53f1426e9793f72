// Package spintax expande a sintaxe {opção1|opção2|opção3} usada para variar
// mensagens de outreach. Cada grupo resolve para exatamente uma alternativa,
// com suporte a aninhamento: "{Oi|{E aí|Fala}}".
package spintax

import (
	"math/rand"
	"strings"
)

// Máximo de passadas de expansão. Entrada malformada (chaves desbalanceadas)
// para de expandir aqui e devolve o texto parcial em vez de travar.
const maxIterations = 10

// Engine expande spintax usando uma fonte de aleatoriedade injetada, então
// testes podem fixar a seed e afirmar a saída exata.
type Engine struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Expand resolve todos os grupos {a|b|c} do texto. Idempotente em texto sem
// chaves. Resolve sempre o grupo mais interno primeiro, de dentro pra fora.
func (e *Engine) Expand(text string) string {
	for i := 0; i < maxIterations; i++ {
		expanded, changed := e.expandOnce(text)
		if !changed {
			break
		}
		text = expanded
	}
	return text
}

// expandOnce substitui todos os grupos sem aninhamento encontrados numa
// passada. Grupos externos ficam para a próxima iteração.
func (e *Engine) expandOnce(text string) (string, bool) {
	var b strings.Builder
	changed := false
	rest := text

	for {
		start, end := innermostGroup(rest)
		if start < 0 {
			b.WriteString(rest)
			break
		}

		options := strings.Split(rest[start+1:end], "|")
		pick := strings.TrimSpace(options[e.rng.Intn(len(options))])

		b.WriteString(rest[:start])
		b.WriteString(pick)
		rest = rest[end+1:]
		changed = true
	}

	return b.String(), changed
}

// innermostGroup acha o primeiro grupo {...} sem chave aberta dentro dele.
// Retorna índices da chave de abertura e fechamento, ou (-1, -1).
func innermostGroup(text string) (int, int) {
	open := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			open = i
		case '}':
			if open >= 0 {
				return open, i
			}
		}
	}
	return -1, -1
}
