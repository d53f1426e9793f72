package usecase

// Tabelas de palavras-chave e textos usados pelo scorer e pelo composer.
// Centralizadas aqui para não haver cópias divergentes entre os dois.

// Profissões de decisores e cargos de alto valor
var decisionMakerKeywords = []string{
	// Português
	"ceo", "fundador", "founder", "dono", "proprietário", "diretor",
	"empresário", "empreendedor", "sócio", "gestor", "gerente",
	"executivo", "c-level", "head", "líder", "coordenador",
	// Profissionais liberais
	"médico", "médica", "dr.", "dra.", "advogado", "advogada",
	"dentista", "arquiteto", "engenheiro", "psicólogo", "nutricionista",
	"fisioterapeuta", "coach", "consultor", "consultora",
	// Inglês
	"entrepreneur", "business owner", "manager", "director",
}

// Termos que indicam negócio próprio na bio
var businessKeywords = []string{
	"empresa", "negócio", "business", "founder", "ceo", "startup",
	"clínica", "consultório",
}

type keywordCategory struct {
	name     string
	keywords []string
}

// Interesses relevantes, varridos em ordem fixa
var interestCategories = []keywordCategory{
	{"marketing", []string{"marketing", "growth", "vendas", "sales", "leads", "tráfego"}},
	{"tecnologia", []string{"tech", "startup", "saas", "software", "automação", "ia", "ai"}},
	{"negocios", []string{"business", "negócio", "empresa", "empreend", "lucro", "faturamento"}},
	{"estetica", []string{"estética", "beleza", "clínica", "procedimento", "harmonização"}},
	{"saude", []string{"saúde", "bem-estar", "fitness", "nutrição", "medicina"}},
	{"financas", []string{"investimento", "finanças", "renda", "dinheiro", "patrimônio"}},
	{"educacao", []string{"curso", "mentoria", "treinamento", "ensino", "educação"}},
}

// Profissões detectáveis, primeira que casar vence
var professionCategories = []keywordCategory{
	{"médico", []string{"médico", "médica", "dr.", "dra.", "medicina"}},
	{"dentista", []string{"dentista", "odonto", "cirurgião dentista"}},
	{"advogado", []string{"advogado", "advogada", "jurídico", "direito"}},
	{"empresário", []string{"empresário", "empresária", "empreendedor", "founder", "ceo"}},
	{"coach", []string{"coach", "mentora", "mentor"}},
	{"consultor", []string{"consultor", "consultora", "consultoria"}},
	{"nutricionista", []string{"nutricionista", "nutri", "nutrição"}},
	{"psicólogo", []string{"psicólogo", "psicóloga", "psico", "terapeuta"}},
	{"arquiteto", []string{"arquiteto", "arquiteta", "arquitetura"}},
	{"designer", []string{"designer", "design", "ux", "ui"}},
	{"desenvolvedor", []string{"developer", "desenvolvedor", "programador", "tech"}},
	{"marketing", []string{"marketing", "growth", "social media", "tráfego"}},
}

// Localizações de alto valor (Brasil). Ordem importa: tokens mais específicos
// primeiro para "são paulo" não cair no match de "sp".
var highValueLocations = []struct {
	token string
	label string
}{
	{"são paulo", "São Paulo"},
	{"sao paulo", "São Paulo"},
	{"sampa", "São Paulo"},
	{"rio de janeiro", "Rio de Janeiro"},
	{"belo horizonte", "Belo Horizonte"},
	{"brasília", "Brasília"},
	{"brasilia", "Brasília"},
	{"curitiba", "Curitiba"},
	{"porto alegre", "Porto Alegre"},
	{"florianópolis", "Florianópolis"},
	{"salvador", "Salvador"},
	{"recife", "Recife"},
	{"fortaleza", "Fortaleza"},
	{"campinas", "Campinas"},
	{"sp", "São Paulo"},
	{"rj", "Rio de Janeiro"},
	{"rio", "Rio de Janeiro"},
	{"bh", "Belo Horizonte"},
	{"df", "Brasília"},
}

// Observações prontas para especialidades encontradas direto na bio.
// Prioridade 1 na geração de hook: mais específico que profissão/interesse.
var bioSpecialtyHooks = []struct {
	keyword string
	hook    string
}{
	{"longevidade", "Vi seu foco em longevidade."},
	{"emagrecimento", "Notei seu trabalho com emagrecimento."},
	{"harmonização", "Curti seu trabalho com harmonização."},
	{"estética", "Vi seus resultados com estética."},
	{"botox", "Notei seu trabalho com procedimentos."},
	{"implante", "Vi que você trabalha com implantes."},
	{"ortodontia", "Notei seu trabalho com ortodontia."},
	{"personal", "Vi seu trabalho como personal."},
	{"crossfit", "Notei que você é de crossfit."},
	{"pilates", "Vi seu trabalho com pilates."},
	{"yoga", "Notei seu trabalho com yoga."},
	{"coaching", "Vi que você faz coaching."},
	{"mentoria", "Notei que você faz mentoria."},
	{"consultoria", "Vi que você faz consultoria."},
	{"dermatologia", "Notei sua especialidade em dermato."},
	{"cardiologia", "Vi que você é cardiologista."},
	{"nutrologia", "Notei seu trabalho com nutrologia."},
	{"clínica", "Notei sua clínica."},
	{"consultório", "Vi que você tem consultório próprio."},
}

// Hooks genéricos por profissão (prioridade 2)
var professionHooks = map[string][]string{
	"médico":        {"Notei que você atende particular.", "Vi que você é da área de saúde.", "Sei como é corrida a rotina de consultório."},
	"dentista":      {"Vi que você trabalha com estética dental.", "Notei seu trabalho com harmonização.", "Curti os resultados que você posta."},
	"advogado":      {"Vi que você atua na área jurídica.", "Notei sua especialidade.", "Interessante seu posicionamento aqui."},
	"empresário":    {"Vi que você empreende.", "Notei seu negócio.", "Curti a proposta da sua empresa."},
	"coach":         {"Vi seu trabalho com desenvolvimento pessoal.", "Notei sua metodologia.", "Curti sua abordagem."},
	"consultor":     {"Vi que você faz consultoria.", "Notei sua área de atuação.", "Interessante seu nicho."},
	"nutricionista": {"Vi seu trabalho com nutrição.", "Notei sua especialidade.", "Curti seu conteúdo sobre alimentação."},
	"psicólogo":     {"Vi seu trabalho com saúde mental.", "Notei sua abordagem terapêutica.", "Curti seu conteúdo."},
	"marketing":     {"Vi que você é da área de marketing.", "Notei seu trabalho com growth.", "Curti suas estratégias."},
}

// Hooks por interesse (prioridade 3)
var interestHooks = map[string]string{
	"marketing":  "Notei que você manja de marketing.",
	"tecnologia": "Vi que você curte tecnologia.",
	"negocios":   "Notei seu foco em negócios.",
	"estetica":   "Vi que você é da área de estética.",
	"saude":      "Notei que você é da área de saúde.",
	"financas":   "Vi que você trabalha com finanças.",
	"educacao":   "Notei seu trabalho com educação.",
}

// Templates por tier. Estilo curto e curioso, placeholders {first_name},
// {profession} e {bio_hook}.
var templatesByTier = map[string][]string{
	"ultra": {
		"{first_name}, vi que você trabalha com {profession}.\n\n{bio_hook}\n\nPosso te fazer uma pergunta?",
		"{first_name}, curti seu perfil.\n\n{bio_hook}\n\nTeria 2 min pra trocar uma ideia?",
		"Oi {first_name}\n\n{bio_hook}\n\nAcho que faz sentido a gente conversar. Posso te explicar o porquê?",
		"{first_name}, passei pelo seu perfil.\n\n{bio_hook}\n\nMe conta uma coisa: como tá a captação de clientes hoje?",
	},
	"high": {
		"{first_name}, vi seu perfil.\n\n{bio_hook}\n\nPosso te fazer uma pergunta rápida?",
		"Oi {first_name}\n\n{bio_hook}\n\nFaz sentido trocar uma ideia sobre isso?",
		"{first_name}, curti o que você faz.\n\n{bio_hook}\n\nPosso te mandar um áudio de 1 min explicando algo?",
		"{first_name}\n\n{bio_hook}\n\nTeria interesse em saber como alguns {profession}s estão resolvendo isso?",
	},
	"medium": {
		"{first_name}, tudo bem?\n\nVi seu perfil e achei interessante.\n\nPosso te fazer uma pergunta?",
		"Oi {first_name}\n\nPassei pelo seu perfil.\n\nFaz sentido trocar uma ideia rápida?",
		"{first_name}\n\nCurti seu trabalho.\n\nPosso te contar algo que talvez te interesse?",
		"{first_name}, beleza?\n\nVi que você é {profession}.\n\nMe conta: como tá a demanda de clientes hoje?",
	},
}

// Saudações do modo híbrido (spintax)
var spintaxGreetings = []string{
	"{Oi|Olá|E aí} {first_name}",
	"{first_name}, {tudo bem|beleza|tudo certo}?",
	"{Fala|E aí|Opa} {first_name}",
	"{first_name}",
}

// Fechamentos do modo híbrido por tier (spintax)
var spintaxClosingsByTier = map[string][]string{
	"ultra": {
		"{Posso te fazer uma pergunta|Queria te perguntar uma coisa}?",
		"{Me conta|Conta pra mim}: como {tá|está} a captação {hoje|atualmente}?",
		"{Acho que faz sentido|Talvez faça sentido} a gente conversar.",
	},
	"high": {
		"{Posso te fazer uma pergunta rápida|Teria 2 min}?",
		"{Faz sentido|Faria sentido} trocar uma ideia?",
		"{Posso te mandar um áudio|Te mando um áudio} de 1 min?",
	},
	"medium": {
		"{Posso te fazer uma pergunta|Queria te perguntar}?",
		"{Faz sentido|Faria sentido} trocar uma ideia rápida?",
		"{Posso te contar algo|Te conto algo} que {pode te interessar|talvez te interesse}?",
	},
}
