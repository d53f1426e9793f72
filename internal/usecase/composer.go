package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/mottivme/socialfy/internal/entity"
	"github.com/mottivme/socialfy/internal/spintax"
)

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// MessageComposer gera a mensagem de outreach a partir do perfil e do score.
// O RNG é injetado para os testes fixarem a seed (nada de rand global).
type MessageComposer struct {
	rng     *rand.Rand
	spintax *spintax.Engine
}

func NewMessageComposer(rng *rand.Rand) *MessageComposer {
	return &MessageComposer{
		rng:     rng,
		spintax: spintax.New(rng),
	}
}

// Compose monta a mensagem no modo pedido. Nunca retorna erro: placeholder
// faltando cai no template mais simples com confidence rebaixada.
func (c *MessageComposer) Compose(profile *entity.LeadProfile, score *entity.LeadScore, mode entity.ComposeMode) *entity.ComposedMessage {
	if mode == entity.ModeHybrid {
		return c.composeHybrid(profile, score)
	}
	return c.composeTemplate(profile, score)
}

func (c *MessageComposer) composeTemplate(profile *entity.LeadProfile, score *entity.LeadScore) *entity.ComposedMessage {
	level := templateLevel(score)
	pool := templatesByTier[string(level)]
	tmpl := pool[c.rng.Intn(len(pool))]

	profession := score.DetectedProfession
	if profession == "" {
		profession = "profissional"
	}

	vars := map[string]string{
		"first_name": firstName(profile.FullName),
		"profession": profession,
		"location":   score.DetectedLocation,
		"bio_hook":   c.bioHook(profile.Bio, score),
	}

	message, err := fillTemplate(tmpl, vars)
	if err != nil {
		// Fallback: template mais simples, sem hook
		message, _ = fillTemplate(templatesByTier["medium"][0], map[string]string{
			"first_name": firstName(profile.FullName),
			"profession": "profissional",
			"location":   "",
			"bio_hook":   "",
		})
		level = entity.TierLow
	}

	return &entity.ComposedMessage{
		Message:              cleanMessage(message),
		TemplateUsed:         truncate(tmpl, 50) + "...",
		PersonalizationLevel: level,
		HooksUsed:            hooksUsed(score, false),
		Confidence:           confidence(score.TotalScore, level),
	}
}

// composeHybrid: saudação spintax + hook semântico da bio + fechamento
// spintax do tier, tudo expandido no final. Variação sintática anti-spam.
func (c *MessageComposer) composeHybrid(profile *entity.LeadProfile, score *entity.LeadScore) *entity.ComposedMessage {
	level := hybridLevel(score.TotalScore)

	greeting := spintaxGreetings[c.rng.Intn(len(spintaxGreetings))]
	greeting = strings.ReplaceAll(greeting, "{first_name}", firstName(profile.FullName))

	bioHook := c.bioHook(profile.Bio, score)

	closings := spintaxClosingsByTier[string(level)]
	closing := closings[c.rng.Intn(len(closings))]

	var message string
	if bioHook != "" {
		message = greeting + "\n\n" + bioHook + "\n\n" + closing
	} else {
		message = greeting + "\n\n" + closing
	}

	message = c.spintax.Expand(message)

	return &entity.ComposedMessage{
		Message:              cleanMessage(message),
		TemplateUsed:         "hybrid:" + string(level),
		PersonalizationLevel: level,
		HooksUsed:            hooksUsed(score, true),
		Confidence:           confidence(score.TotalScore, level),
		SpintaxUsed:          true,
	}
}

// bioHook aplica a ordem de prioridade: especialidade achada na bio, depois
// hook de profissão, depois hook de interesse, senão vazio.
func (c *MessageComposer) bioHook(bio string, score *entity.LeadScore) string {
	bioLower := strings.ToLower(bio)

	if len(bio) > 10 {
		for _, s := range bioSpecialtyHooks {
			if strings.Contains(bioLower, s.keyword) {
				return s.hook
			}
		}

		// Primeiro trecho da bio antes de um separador comum
		for _, sep := range []string{"|", "📍", "•", "🔹", "✨", "\n"} {
			if idx := strings.Index(bio, sep); idx >= 0 {
				firstPart := strings.TrimSpace(bio[:idx])
				if len(firstPart) > 10 && len(firstPart) < 50 {
					return "Vi que você trabalha com " + strings.ToLower(firstPart) + "."
				}
				break
			}
		}
	}

	if hooks, ok := professionHooks[score.DetectedProfession]; ok {
		return hooks[c.rng.Intn(len(hooks))]
	}

	for _, interest := range score.DetectedInterests {
		if hook, ok := interestHooks[interest]; ok {
			return hook
		}
	}

	return ""
}

func templateLevel(score *entity.LeadScore) entity.TemplateTier {
	if score.TotalScore >= 70 && score.DetectedProfession != "" {
		return entity.TierUltra
	}
	if score.TotalScore >= 50 {
		return entity.TierHigh
	}
	return entity.TierMedium
}

func hybridLevel(total int) entity.TemplateTier {
	if total >= 70 {
		return entity.TierUltra
	}
	if total >= 50 {
		return entity.TierHigh
	}
	return entity.TierMedium
}

func fillTemplate(tmpl string, vars map[string]string) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		value, ok := vars[key]
		if !ok {
			missing = key
			return m
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("placeholder desconhecido: %s", missing)
	}
	return out, nil
}

func firstName(fullName string) string {
	if fullName == "" {
		return "Oi"
	}

	name := fullName
	for _, title := range []string{"Dr. ", "Dra. ", "Dr ", "Dra "} {
		name = strings.ReplaceAll(name, title, "")
	}

	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "Oi"
	}
	return strings.Title(strings.ToLower(parts[0]))
}

func hooksUsed(score *entity.LeadScore, hybrid bool) []string {
	var hooks []string
	if hybrid {
		hooks = append(hooks, "spintax:hybrid")
	}
	if score.DetectedProfession != "" {
		hooks = append(hooks, "profession:"+score.DetectedProfession)
	}
	if !hybrid && score.DetectedLocation != "" {
		hooks = append(hooks, "location:"+score.DetectedLocation)
	}
	if len(score.DetectedInterests) > 0 {
		hooks = append(hooks, "interests:"+strings.Join(score.DetectedInterests, ","))
	}
	return hooks
}

// confidence = média entre a base do tier e o score normalizado
func confidence(total int, level entity.TemplateTier) float64 {
	base := map[entity.TemplateTier]float64{
		entity.TierUltra:  0.9,
		entity.TierHigh:   0.7,
		entity.TierMedium: 0.5,
		entity.TierLow:    0.3,
	}[level]

	scoreFactor := math.Min(float64(total)/100, 1.0)

	return math.Round((base+scoreFactor)/2*100) / 100
}

// cleanMessage remove linhas vazias duplicadas e espaços nas pontas
func cleanMessage(message string) string {
	lines := strings.Split(message, "\n")
	var cleaned []string
	prevEmpty := false

	for _, line := range lines {
		isEmpty := strings.TrimSpace(line) == ""
		if isEmpty && prevEmpty {
			continue
		}
		cleaned = append(cleaned, line)
		prevEmpty = isEmpty
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// truncate corta em runas, não em bytes: os templates têm acento
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
