package model

// Display models are the camel-style, UI-facing projections of rows served by
// the public read endpoints. Each projection is a fixed, hand-declared
// field-by-field mapping from the store's underscore naming.

// TeamMember is the public projection of a team_members row.
type TeamMember struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Status    string   `json:"status"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Specialty []string `json:"specialty"`
	Bio       string   `json:"bio"`
	Image     string   `json:"image,omitempty"`
}

// NewTeamMember projects a raw row into its display model.
func NewTeamMember(r Row) TeamMember {
	return TeamMember{
		ID:        r.String("id"),
		Code:      r.String("code"),
		Status:    r.String("status"),
		Name:      r.String("name"),
		Role:      r.String("role"),
		Specialty: r.Strings("specialty"),
		Bio:       r.String("bio"),
		Image:     r.String("image"),
	}
}

// NewsFlashItem is the public projection of a news_flash_items row.
type NewsFlashItem struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Category string `json:"category"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	IsAlert  bool   `json:"isAlert"`
}

func NewNewsFlashItem(r Row) NewsFlashItem {
	return NewsFlashItem{
		ID:       r.String("id"),
		Time:     r.String("time"),
		Category: r.String("category"),
		Headline: r.String("headline"),
		Summary:  r.String("summary"),
		Source:   r.String("source"),
		IsAlert:  r.Bool("is_alert"),
	}
}

// EventItem is the public projection of an event_items row.
type EventItem struct {
	ID            string   `json:"id"`
	EventID       string   `json:"eventId"`
	Title         string   `json:"title"`
	Day           string   `json:"day"`
	Month         string   `json:"month"`
	Year          string   `json:"year"`
	Location      string   `json:"location"`
	Type          string   `json:"type"`
	Speaker       string   `json:"speaker,omitempty"`
	Status        string   `json:"status"`
	MissionReport string   `json:"missionReport,omitempty"`
	VisualLogs    []string `json:"visualLogs,omitempty"`
}

func NewEventItem(r Row) EventItem {
	return EventItem{
		ID:            r.String("id"),
		EventID:       r.String("event_id"),
		Title:         r.String("title"),
		Day:           r.String("day"),
		Month:         r.String("month"),
		Year:          r.String("year"),
		Location:      r.String("location"),
		Type:          r.String("type"),
		Speaker:       r.String("speaker"),
		Status:        r.String("status"),
		MissionReport: r.String("mission_report"),
		VisualLogs:    r.Strings("visual_logs"),
	}
}

// MacroIndicator is the public projection of a macro_indicators row.
type MacroIndicator struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Region        string   `json:"region"`
	Impact        int      `json:"impact"`
	Indicator     string   `json:"indicator"`
	Estimate      string   `json:"estimate"`
	Actual        string   `json:"actual,omitempty"`
	Previous      string   `json:"previous"`
	Status        string   `json:"status"`
	Signal        string   `json:"signal,omitempty"`
	Briefing      string   `json:"briefing"`
	ImpactTargets []string `json:"impactTargets,omitempty"`
}

func NewMacroIndicator(r Row) MacroIndicator {
	return MacroIndicator{
		ID:            r.String("id"),
		Date:          r.String("date"),
		Time:          r.String("time"),
		Region:        r.String("region"),
		Impact:        r.Int("impact"),
		Indicator:     r.String("indicator"),
		Estimate:      r.String("estimate"),
		Actual:        r.String("actual"),
		Previous:      r.String("previous"),
		Status:        r.String("status"),
		Signal:        r.String("signal"),
		Briefing:      r.String("briefing"),
		ImpactTargets: r.Strings("impact_targets"),
	}
}

// GalleryItem is the public projection of a gallery_items row.
type GalleryItem struct {
	ID          string `json:"id"`
	CamID       string `json:"camId"`
	Location    string `json:"location"`
	Timestamp   string `json:"timestamp"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

func NewGalleryItem(r Row) GalleryItem {
	return GalleryItem{
		ID:          r.String("id"),
		CamID:       r.String("cam_id"),
		Location:    r.String("location"),
		Timestamp:   r.String("timestamp"),
		ImageURL:    r.String("image_url"),
		Description: r.String("description"),
	}
}

// ResearchReport is the public projection of a research_reports row.
type ResearchReport struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Impact   string `json:"impact"`
	Date     string `json:"date"`
}

func NewResearchReport(r Row) ResearchReport {
	return ResearchReport{
		ID:       r.String("id"),
		Title:    r.String("title"),
		Category: r.String("category"),
		Impact:   r.String("impact"),
		Date:     r.String("date"),
	}
}

// ResearchArchiveItem is the public projection of a research_archive_items row.
type ResearchArchiveItem struct {
	ID        string   `json:"id"`
	FileID    string   `json:"fileId"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Date      string   `json:"date"`
	Sector    string   `json:"sector"`
	RiskLevel string   `json:"riskLevel"`
	Status    string   `json:"status"`
	Security  string   `json:"security"`
	Tokens    []string `json:"tokens,omitempty"`
	ReadTime  string   `json:"readTime"`
}

func NewResearchArchiveItem(r Row) ResearchArchiveItem {
	return ResearchArchiveItem{
		ID:        r.String("id"),
		FileID:    r.String("file_id"),
		Title:     r.String("title"),
		Excerpt:   r.String("excerpt"),
		Date:      r.String("date"),
		Sector:    r.String("sector"),
		RiskLevel: r.String("risk_level"),
		Status:    r.String("status"),
		Security:  r.String("security"),
		Tokens:    r.Strings("tokens"),
		ReadTime:  r.String("read_time"),
	}
}

// SiteStat is the public projection of a site_stats row.
type SiteStat struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Suffix    string  `json:"suffix,omitempty"`
	SubDetail string  `json:"subDetail"`
	Color     string  `json:"color"`
	SortOrder int     `json:"sortOrder"`
}

func NewSiteStat(r Row) SiteStat {
	return SiteStat{
		ID:        r.String("id"),
		Label:     r.String("label"),
		Value:     r.Float("value"),
		Suffix:    r.String("suffix"),
		SubDetail: r.String("sub_detail"),
		Color:     r.String("color"),
		SortOrder: r.Int("sort_order"),
	}
}

// SentimentIndicator is the public projection of a market_sentiment row.
type SentimentIndicator struct {
	ID             string `json:"id"`
	IndicatorType  string `json:"indicatorType"`
	Value          string `json:"value"`
	Classification string `json:"classification,omitempty"`
	Change24h      string `json:"change24h,omitempty"`
	Signal         string `json:"signal,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

func NewSentimentIndicator(r Row) SentimentIndicator {
	return SentimentIndicator{
		ID:             r.String("id"),
		IndicatorType:  r.String("indicator_type"),
		Value:          r.String("value"),
		Classification: r.String("classification"),
		Change24h:      r.String("change_24h"),
		Signal:         r.String("signal"),
		UpdatedAt:      r.String("updated_at"),
	}
}

// Partner is the public projection of a partners row.
type Partner struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	LogoURL         string `json:"logoUrl"`
	Website         string `json:"website,omitempty"`
	SocialX         string `json:"socialX,omitempty"`
	SocialInstagram string `json:"socialInstagram,omitempty"`
	SocialLinkedin  string `json:"socialLinkedin,omitempty"`
	SortOrder       int    `json:"sortOrder"`
}

func NewPartner(r Row) Partner {
	return Partner{
		ID:              r.String("id"),
		Name:            r.String("name"),
		Description:     r.String("description"),
		LogoURL:         r.String("logo_url"),
		Website:         r.String("website"),
		SocialX:         r.String("social_x"),
		SocialInstagram: r.String("social_instagram"),
		SocialLinkedin:  r.String("social_linkedin"),
		SortOrder:       r.Int("sort_order"),
	}
}

// CommunityEvent is the public projection of a community_events row.
type CommunityEvent struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EventType    string `json:"eventType"`
	EventDate    string `json:"eventDate"`
	Location     string `json:"location"`
	MaxAttendees int    `json:"maxAttendees"`
	ImageURL     string `json:"imageUrl,omitempty"`
	IsActive     bool   `json:"isActive"`
}

func NewCommunityEvent(r Row) CommunityEvent {
	return CommunityEvent{
		ID:           r.String("id"),
		Title:        r.String("title"),
		Description:  r.String("description"),
		EventType:    r.String("event_type"),
		EventDate:    r.String("event_date"),
		Location:     r.String("location"),
		MaxAttendees: r.Int("max_attendees"),
		ImageURL:     r.String("image_url"),
		IsActive:     r.Bool("is_active"),
	}
}
