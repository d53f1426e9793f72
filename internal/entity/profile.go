package entity

// RecentPost resume um post recente do perfil (vem do scraper, não daqui)
type RecentPost struct {
	Caption      string `json:"caption,omitempty"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
}

// LeadProfile é o perfil cru entregue pelo scraper. Imutável: o engine só lê.
type LeadProfile struct {
	Username       string       `json:"username"`
	FullName       string       `json:"full_name,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	FollowersCount int          `json:"followers_count"`
	FollowingCount int          `json:"following_count"`
	PostsCount     int          `json:"posts_count"`
	EngagementRate float64      `json:"engagement_rate"`
	IsPrivate      bool         `json:"is_private"`
	IsVerified     bool         `json:"is_verified"`
	IsBusiness     bool         `json:"is_business"`
	Category       string       `json:"category,omitempty"`
	PostingFreq    string       `json:"posting_frequency,omitempty"` // "muito ativo", "ativo", "esporádico"
	RecentPosts    []RecentPost `json:"recent_posts,omitempty"`
}
