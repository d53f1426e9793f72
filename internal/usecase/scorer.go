package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mottivme/socialfy/internal/entity"
)

var titleMarkerRe = regexp.MustCompile(`\b(dr\.|dra\.|dr |dra )`)

// LeadScorer calcula o score semântico de um lead (0-100) a partir do perfil.
// Puro e sem estado: seguro para chamadas concorrentes.
type LeadScorer struct{}

func NewLeadScorer() *LeadScorer {
	return &LeadScorer{}
}

// ComputeScore nunca falha: campo ausente ou vazio só não pontua.
func (s *LeadScorer) ComputeScore(profile *entity.LeadProfile) *entity.LeadScore {
	bio := strings.ToLower(profile.Bio)
	fullName := strings.ToLower(profile.FullName)

	score := &entity.LeadScore{
		Username: profile.Username,
		Priority: entity.PriorityNurturing,
	}

	// 1. Bio e demografia (máx 30)
	score.BioScore = s.bioScore(bio, fullName)

	// 2. Engajamento (máx 30)
	score.EngagementScore = s.engagementScore(profile)

	// 3. Completude do perfil (máx 25)
	score.ProfileScore = s.profileScore(profile)

	// 4. Recência (máx 15)
	score.RecencyScore = s.recencyScore(profile)

	total := score.BioScore + score.EngagementScore + score.ProfileScore + score.RecencyScore
	score.TotalScore = clampScore(total)
	score.Priority = priorityFor(score.TotalScore)

	// Dados extraídos para personalização
	score.DetectedProfession = detectProfession(bio, fullName)
	score.DetectedInterests = detectInterests(bio)
	score.DetectedLocation = detectLocation(bio)
	score.IsDecisionMaker = isDecisionMaker(bio, fullName)

	score.RecommendedTemplate = recommendTemplate(score)
	score.PersonalizationHooks = generateHooks(profile, score)
	score.ApproachNotes = approachNotes(score)

	return score
}

func (s *LeadScorer) bioScore(bio, fullName string) int {
	points := 0
	combined := fullName + " " + bio

	// Título profissional (Dr., Dra.)
	if titleMarkerRe.MatchString(combined) {
		points += 5
	}

	// Decisor / profissional de alto valor
	if isDecisionMaker(bio, fullName) {
		points += 10
	}

	// Menciona negócio/empresa
	for _, kw := range businessKeywords {
		if strings.Contains(bio, kw) {
			points += 5
			break
		}
	}

	// Localização de alto valor
	if detectLocation(bio) != "" {
		points += 5
	}

	// Interesses relevantes
	if len(detectInterests(bio)) > 0 {
		points += 5
	}

	return minInt(points, 30)
}

func (s *LeadScorer) engagementScore(profile *entity.LeadProfile) int {
	points := 0

	// Proporção seguidores/seguindo saudável
	if profile.FollowingCount > 0 {
		ratio := float64(profile.FollowersCount) / float64(profile.FollowingCount)
		if ratio >= 0.5 && ratio <= 3.0 {
			points += 10
		} else if ratio >= 0.3 && ratio <= 5.0 {
			points += 5
		}
	}

	// Faixa ideal de seguidores para outreach
	followers := profile.FollowersCount
	if followers >= 500 && followers <= 50000 {
		points += 10
	} else if followers >= 200 && followers <= 100000 {
		points += 5
	}

	// Taxa de engajamento
	switch {
	case profile.EngagementRate >= 5:
		points += 10
	case profile.EngagementRate >= 2:
		points += 7
	case profile.EngagementRate >= 1:
		points += 3
	}

	return minInt(points, 30)
}

func (s *LeadScorer) profileScore(profile *entity.LeadProfile) int {
	points := 0

	if !profile.IsPrivate {
		points += 10
	}

	if len(profile.Bio) > 10 {
		points += 5
	}

	if profile.PostsCount >= 50 {
		points += 5
	} else if profile.PostsCount >= 20 {
		points += 3
	}

	if profile.IsBusiness {
		points += 5
	} else if profile.Category != "" {
		points += 3
	}

	return minInt(points, 25)
}

func (s *LeadScorer) recencyScore(profile *entity.LeadProfile) int {
	points := 0

	if len(profile.RecentPosts) >= 3 {
		points += 10
	} else if len(profile.RecentPosts) > 0 {
		points += 5
	}

	if strings.Contains(profile.PostingFreq, "ativo") {
		points += 5
	}

	return minInt(points, 15)
}

func priorityFor(total int) entity.LeadPriority {
	switch {
	case total >= 70:
		return entity.PriorityHot
	case total >= 50:
		return entity.PriorityWarm
	case total >= 40:
		return entity.PriorityCold
	default:
		return entity.PriorityNurturing
	}
}

func isDecisionMaker(bio, fullName string) bool {
	combined := bio + " " + fullName
	for _, kw := range decisionMakerKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}

// detectProfession varre as categorias em ordem fixa, primeira que casar vence
func detectProfession(bio, fullName string) string {
	combined := bio + " " + fullName
	for _, cat := range professionCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(combined, kw) {
				return cat.name
			}
		}
	}
	return ""
}

func detectInterests(bio string) []string {
	if bio == "" {
		return nil
	}
	var interests []string
	for _, cat := range interestCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(bio, kw) {
				interests = append(interests, cat.name)
				break
			}
		}
	}
	return interests
}

func detectLocation(bio string) string {
	if bio == "" {
		return ""
	}
	for _, loc := range highValueLocations {
		if strings.Contains(bio, loc.token) {
			return loc.label
		}
	}
	return ""
}

func recommendTemplate(score *entity.LeadScore) entity.TemplateTier {
	if score.TotalScore >= 70 && score.DetectedProfession != "" {
		return entity.TierUltra
	}
	if score.TotalScore >= 50 {
		return entity.TierHigh
	}
	return entity.TierMedium
}

// generateHooks monta a lista de ganchos para o CRM, em ordem de relevância
func generateHooks(profile *entity.LeadProfile, score *entity.LeadScore) []string {
	var hooks []string

	if score.DetectedProfession != "" {
		hooks = append(hooks, "profissão: "+score.DetectedProfession)
	}
	if score.DetectedLocation != "" {
		hooks = append(hooks, "localização: "+score.DetectedLocation)
	}
	if len(score.DetectedInterests) > 0 {
		hooks = append(hooks, "interesses: "+strings.Join(score.DetectedInterests, ", "))
	}

	if len(profile.Bio) > 20 {
		firstPart := profile.Bio
		if idx := strings.Index(firstPart, "|"); idx >= 0 {
			firstPart = firstPart[:idx]
		} else if runes := []rune(firstPart); len(runes) > 50 {
			// Corte em runas: bio com acento não pode partir no meio do caractere
			firstPart = string(runes[:50])
		}
		hooks = append(hooks, "bio: "+strings.TrimSpace(firstPart))
	}

	if profile.FollowersCount >= 10000 {
		hooks = append(hooks, fmt.Sprintf("influencer: %d seguidores", profile.FollowersCount))
	} else if profile.FollowersCount >= 1000 {
		hooks = append(hooks, fmt.Sprintf("audiência: %d seguidores", profile.FollowersCount))
	}

	return hooks
}

func approachNotes(score *entity.LeadScore) string {
	var notes []string

	if score.IsDecisionMaker {
		notes = append(notes, "DECISOR - Abordagem direta sobre ROI")
	}

	switch score.Priority {
	case entity.PriorityHot:
		notes = append(notes, "HOT LEAD - Prioridade máxima")
	case entity.PriorityWarm:
		notes = append(notes, "WARM LEAD - Personalizar bem")
	}

	if score.DetectedProfession != "" {
		notes = append(notes, fmt.Sprintf("Mencionar que trabalha com %ss", score.DetectedProfession))
	}
	if score.DetectedLocation != "" {
		notes = append(notes, "Possível referência local: "+score.DetectedLocation)
	}

	if len(notes) == 0 {
		return "Abordagem padrão"
	}
	return strings.Join(notes, " | ")
}

func clampScore(total int) int {
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
