package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mottivme/socialfy/internal/entity"
	"github.com/stretchr/testify/assert"
)

// ============ TESTES DO LEAD SCORER ============

// TestComputeScoreHotLead - Decisor com perfil forte cai no tier hot
func TestComputeScoreHotLead(t *testing.T) {
	scorer := NewLeadScorer()

	profile := &entity.LeadProfile{
		Username:       "joao.ceo",
		FullName:       "João Silva",
		Bio:            "CEO e fundador da TechCorp | São Paulo",
		FollowersCount: 150000,
		FollowingCount: 1000,
		PostsCount:     120,
		EngagementRate: 3,
		IsPrivate:      false,
		IsBusiness:     true,
		PostingFreq:    "muito ativo",
		RecentPosts: []entity.RecentPost{
			{Caption: "post 1"}, {Caption: "post 2"}, {Caption: "post 3"},
		},
	}

	score := scorer.ComputeScore(profile)

	assert.GreaterOrEqual(t, score.TotalScore, 70)
	assert.Equal(t, entity.PriorityHot, score.Priority)
	assert.True(t, score.IsDecisionMaker)
	assert.Equal(t, "empresário", score.DetectedProfession)
	assert.Equal(t, "São Paulo", score.DetectedLocation)
	assert.Equal(t, entity.TierUltra, score.RecommendedTemplate)
}

// TestComputeScoreEmptyProfile - Perfil vazio/trancado pontua zero em tudo
func TestComputeScoreEmptyProfile(t *testing.T) {
	scorer := NewLeadScorer()

	score := scorer.ComputeScore(&entity.LeadProfile{
		Username:  "ghost",
		IsPrivate: true,
	})

	assert.Equal(t, 0, score.BioScore)
	assert.Equal(t, 0, score.EngagementScore)
	assert.Equal(t, 0, score.ProfileScore)
	assert.Equal(t, 0, score.RecencyScore)
	assert.Equal(t, 0, score.TotalScore)
	assert.Equal(t, entity.PriorityNurturing, score.Priority)
	assert.Equal(t, entity.TierMedium, score.RecommendedTemplate)
	assert.False(t, score.IsDecisionMaker)
}

// TestComputeScoreAlwaysInRange - Perfis extremos não saem de [0,100]
func TestComputeScoreAlwaysInRange(t *testing.T) {
	scorer := NewLeadScorer()

	profiles := []*entity.LeadProfile{
		{},
		{Username: "x", FollowersCount: -50, FollowingCount: -3},
		{
			Username:       "max",
			FullName:       "Dra. Maria Oliveira",
			Bio:            "Dra. | CEO | médica | marketing | tech | empresa | São Paulo | curso",
			FollowersCount: 10000,
			FollowingCount: 5000,
			PostsCount:     999,
			EngagementRate: 99,
			IsBusiness:     true,
			Category:       "Saúde",
			PostingFreq:    "muito ativo",
			RecentPosts:    make([]entity.RecentPost, 12),
		},
	}

	for _, p := range profiles {
		score := scorer.ComputeScore(p)
		assert.GreaterOrEqual(t, score.TotalScore, 0)
		assert.LessOrEqual(t, score.TotalScore, 100)
		assert.LessOrEqual(t, score.BioScore, 30)
		assert.LessOrEqual(t, score.EngagementScore, 30)
		assert.LessOrEqual(t, score.ProfileScore, 25)
		assert.LessOrEqual(t, score.RecencyScore, 15)
	}
}

// TestComputeScoreEngagementBands - Faixas de engajamento e de seguidores
func TestComputeScoreEngagementBands(t *testing.T) {
	scorer := NewLeadScorer()

	// Faixa ideal: ratio saudável + seguidores na faixa + engajamento alto
	ideal := scorer.ComputeScore(&entity.LeadProfile{
		Username:       "ideal",
		FollowersCount: 5000,
		FollowingCount: 2500, // ratio 2.0
		EngagementRate: 6,
	})
	assert.Equal(t, 30, ideal.EngagementScore)

	// Crédito parcial nas três frentes
	partial := scorer.ComputeScore(&entity.LeadProfile{
		Username:       "partial",
		FollowersCount: 80000,
		FollowingCount: 20000, // ratio 4.0
		EngagementRate: 2.5,
	})
	assert.Equal(t, 5+5+7, partial.EngagementScore)

	// Ratio inflado de comprador de seguidor não pontua
	inflated := scorer.ComputeScore(&entity.LeadProfile{
		Username:       "inflated",
		FollowersCount: 900000,
		FollowingCount: 10,
	})
	assert.Equal(t, 0, inflated.EngagementScore)
}

// TestDetectProfessionFirstMatchWins - Ordem fixa das categorias decide
func TestDetectProfessionFirstMatchWins(t *testing.T) {
	// "médico" vem antes de "marketing" na tabela, mesmo com os dois na bio
	profession := detectProfession("médico e apaixonado por marketing", "")
	assert.Equal(t, "médico", profession)

	assert.Equal(t, "", detectProfession("perfil sem pista nenhuma", ""))
}

// TestDetectInterestsFixedOrder - Interesses saem na ordem das categorias
func TestDetectInterestsFixedOrder(t *testing.T) {
	interests := detectInterests("growth, automação e finanças: renda extra")
	assert.Equal(t, []string{"marketing", "tecnologia", "financas"}, interests)
}

// TestDetectLocationSpecificBeforeAbbreviation - "são paulo" não casa como "sp"
func TestDetectLocationSpecificBeforeAbbreviation(t *testing.T) {
	assert.Equal(t, "São Paulo", detectLocation("clínica em são paulo"))
	assert.Equal(t, "Rio de Janeiro", detectLocation("atendo no rio de janeiro"))
	assert.Equal(t, "", detectLocation("atendo online"))
}

// TestGenerateHooksOrdering - Ganchos em ordem de relevância para o CRM
func TestGenerateHooksOrdering(t *testing.T) {
	scorer := NewLeadScorer()

	score := scorer.ComputeScore(&entity.LeadProfile{
		Username:       "dra.ana",
		FullName:       "Dra. Ana Costa",
		Bio:            "Médica dermatologista | Harmonização facial | São Paulo",
		FollowersCount: 12000,
		FollowingCount: 900,
		PostsCount:     80,
	})

	assert.Equal(t, "médico", score.DetectedProfession)
	assert.NotEmpty(t, score.PersonalizationHooks)
	assert.Equal(t, "profissão: médico", score.PersonalizationHooks[0])
	assert.Contains(t, score.PersonalizationHooks, "localização: São Paulo")
	assert.Contains(t, score.PersonalizationHooks, "influencer: 12000 seguidores")
	assert.Contains(t, score.ApproachNotes, "DECISOR")
}

// TestGenerateHooksBioTruncationIsRuneSafe - Bio acentuada sem separador corta
// em runas, nunca no meio de um caractere
func TestGenerateHooksBioTruncationIsRuneSafe(t *testing.T) {
	scorer := NewLeadScorer()

	// 60 runas de 2 bytes cada: o byte 50 cai no meio de um "ç"
	score := scorer.ComputeScore(&entity.LeadProfile{
		Username: "acentuada",
		Bio:      strings.Repeat("ç", 60),
	})

	var bioHook string
	for _, h := range score.PersonalizationHooks {
		if strings.HasPrefix(h, "bio: ") {
			bioHook = h
		}
	}

	assert.NotEmpty(t, bioHook)
	assert.True(t, utf8.ValidString(bioHook))
	assert.Equal(t, strings.Repeat("ç", 50), strings.TrimPrefix(bioHook, "bio: "))
}
