package schema

import (
	"fmt"
	"time"

	"clubsite/internal/content/domain/model"
)

// Tab pairs a resource key with its console label, in display order.
type Tab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Registry is a pure, static lookup from resource key to schema. All entries
// are validated at construction; an invalid entry is a programming error and
// panics rather than surfacing at request time.
type Registry struct {
	schemas map[string]*model.ResourceSchema
	tabs    []Tab
}

// Get returns the schema registered under key.
func (r *Registry) Get(key string) (*model.ResourceSchema, bool) {
	s, ok := r.schemas[key]
	return s, ok
}

// Tabs returns the console tab order.
func (r *Registry) Tabs() []Tab {
	return r.tabs
}

// Names returns all registered resource keys in tab order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tabs))
	for _, t := range r.tabs {
		names = append(names, t.Key)
	}
	return names
}

// truncateID shortens opaque identifiers for list display.
func truncateID(v interface{}) string {
	s := fmt.Sprint(v)
	if v == nil || s == "" {
		return ""
	}
	if len(s) > 8 {
		return s[:8] + "..."
	}
	return s
}

// formatDate renders a stored timestamp as a local date string.
func formatDate(v interface{}) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case string:
		if t == "" {
			return ""
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.Format("2006-01-02")
		}
		return t
	}
	return fmt.Sprint(v)
}

// NewRegistry builds the resource registry for the admin console. Each entry's
// field list is the single source of truth for that resource's editable
// surface; resources without a meaningful edit surface (inbox, newsletter)
// declare no fields and set ReadOnly.
func NewRegistry() *Registry {
	schemas := []*model.ResourceSchema{
		{
			Name:       "team",
			Collection: "team_members",
			Label:      "TEAM_MEMBERS",
			OrderBy:    "id",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "name", Label: "NAME"},
				{Key: "role", Label: "ROLE"},
				{Key: "status", Label: "STATUS"},
				{Key: "code", Label: "CODE"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "code", Label: "CODE", Type: model.FieldText, Required: true},
				{Key: "name", Label: "NAME", Type: model.FieldText, Required: true},
				{Key: "role", Label: "ROLE", Type: model.FieldText, Required: true},
				{Key: "status", Label: "STATUS", Type: model.FieldSelect, Options: []string{"ONLINE", "OFFLINE", "BUSY"}, Required: true},
				{Key: "specialty", Label: "SPECIALTY", Type: model.FieldArray},
				{Key: "bio", Label: "BIO", Type: model.FieldTextarea, Required: true},
				{Key: "image", Label: "IMAGE_URL", Type: model.FieldText},
			},
		},
		{
			Name:       "news",
			Collection: "news_flash_items",
			Label:      "NEWS_FLASH",
			OrderBy:    "time",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "time", Label: "TIME"},
				{Key: "category", Label: "CATEGORY"},
				{Key: "headline", Label: "HEADLINE"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "time", Label: "TIME", Type: model.FieldText, Required: true},
				{Key: "category", Label: "CATEGORY", Type: model.FieldSelect, Options: []string{"MARKET", "POLICY", "ON-CHAIN", "SOCIAL", "TECH"}, Required: true},
				{Key: "headline", Label: "HEADLINE", Type: model.FieldText, Required: true},
				{Key: "summary", Label: "SUMMARY", Type: model.FieldTextarea, Required: true},
				{Key: "source", Label: "SOURCE", Type: model.FieldText, Required: true},
				{Key: "is_alert", Label: "IS_ALERT", Type: model.FieldSelect, Options: []string{"false", "true"}},
			},
			Mappings: []model.FieldMapping{
				{Key: "is_alert", Coerce: model.CoerceBoolString},
			},
		},
		{
			Name:       "events",
			Collection: "event_items",
			Label:      "EVENTS",
			OrderBy:    "created_at",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "title", Label: "TITLE"},
				{Key: "day", Label: "DAY"},
				{Key: "month", Label: "MONTH"},
				{Key: "status", Label: "STATUS"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "event_id", Label: "EVENT_ID", Type: model.FieldText, Required: true},
				{Key: "title", Label: "TITLE", Type: model.FieldText, Required: true},
				{Key: "day", Label: "DAY", Type: model.FieldText, Required: true},
				{Key: "month", Label: "MONTH", Type: model.FieldText, Required: true},
				{Key: "year", Label: "YEAR", Type: model.FieldText, Required: true},
				{Key: "location", Label: "LOCATION", Type: model.FieldText, Required: true},
				{Key: "type", Label: "TYPE", Type: model.FieldSelect, Options: []string{"INTERNAL", "WORKSHOP", "NETWORKING", "CONFERENCE", "UPGRADE", "GOVERNANCE"}, Required: true},
				{Key: "speaker", Label: "SPEAKER", Type: model.FieldText},
				{Key: "status", Label: "STATUS", Type: model.FieldSelect, Options: []string{"RSVP_OPEN", "FULL_CAPACITY", "COMPLETED", "ACTIVE", "PENDING"}, Required: true},
				{Key: "mission_report", Label: "MISSION_REPORT", Type: model.FieldTextarea},
				{Key: "visual_logs", Label: "VISUAL_LOGS", Type: model.FieldArray},
			},
		},
		{
			Name:       "macro",
			Collection: "macro_indicators",
			Label:      "MACRO_INDICATORS",
			OrderBy:    "date",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "indicator", Label: "INDICATOR"},
				{Key: "date", Label: "DATE"},
				{Key: "region", Label: "REGION"},
				{Key: "status", Label: "STATUS"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "date", Label: "DATE", Type: model.FieldText, Required: true},
				{Key: "time", Label: "TIME", Type: model.FieldText, Required: true},
				{Key: "region", Label: "REGION", Type: model.FieldSelect, Options: []string{"USA", "AUS", "EU", "CHN", "GLOBAL"}, Required: true},
				{Key: "impact", Label: "IMPACT (1-3)", Type: model.FieldNumber, Required: true},
				{Key: "indicator", Label: "INDICATOR", Type: model.FieldText, Required: true},
				{Key: "estimate", Label: "ESTIMATE", Type: model.FieldText, Required: true},
				{Key: "actual", Label: "ACTUAL", Type: model.FieldText},
				{Key: "previous", Label: "PREVIOUS", Type: model.FieldText, Required: true},
				{Key: "status", Label: "STATUS", Type: model.FieldSelect, Options: []string{"upcoming", "released"}, Required: true},
				{Key: "signal", Label: "SIGNAL", Type: model.FieldSelect, Options: []string{"BULLISH", "BEARISH", "NEUTRAL"}},
				{Key: "briefing", Label: "BRIEFING", Type: model.FieldTextarea, Required: true},
				{Key: "impact_targets", Label: "IMPACT_TARGETS", Type: model.FieldArray},
			},
		},
		{
			Name:       "gallery",
			Collection: "gallery_items",
			Label:      "GALLERY",
			OrderBy:    "id",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "cam_id", Label: "CAM_ID"},
				{Key: "location", Label: "LOCATION"},
				{Key: "timestamp", Label: "TIMESTAMP"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "cam_id", Label: "CAM_ID", Type: model.FieldText, Required: true},
				{Key: "location", Label: "LOCATION", Type: model.FieldText, Required: true},
				{Key: "timestamp", Label: "TIMESTAMP", Type: model.FieldText, Required: true},
				{Key: "image_url", Label: "IMAGE_URL", Type: model.FieldText, Required: true},
				{Key: "description", Label: "DESCRIPTION", Type: model.FieldTextarea, Required: true},
			},
		},
		{
			Name:       "reports",
			Collection: "research_reports",
			Label:      "RESEARCH_REPORTS",
			OrderBy:    "date",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "title", Label: "TITLE"},
				{Key: "category", Label: "CATEGORY"},
				{Key: "impact", Label: "IMPACT"},
				{Key: "date", Label: "DATE"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "title", Label: "TITLE", Type: model.FieldText, Required: true},
				{Key: "category", Label: "CATEGORY", Type: model.FieldText, Required: true},
				{Key: "impact", Label: "IMPACT", Type: model.FieldText, Required: true},
				{Key: "date", Label: "DATE", Type: model.FieldText, Required: true},
			},
		},
		{
			Name:       "archive",
			Collection: "research_archive_items",
			Label:      "RESEARCH_ARCHIVE",
			OrderBy:    "date",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "file_id", Label: "FILE_ID"},
				{Key: "title", Label: "TITLE"},
				{Key: "sector", Label: "SECTOR"},
				{Key: "status", Label: "STATUS"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "file_id", Label: "FILE_ID", Type: model.FieldText, Required: true},
				{Key: "title", Label: "TITLE", Type: model.FieldText, Required: true},
				{Key: "excerpt", Label: "EXCERPT", Type: model.FieldTextarea, Required: true},
				{Key: "date", Label: "DATE", Type: model.FieldText, Required: true},
				{Key: "sector", Label: "SECTOR", Type: model.FieldSelect, Options: []string{"DeFi", "L1/L2", "Infrastructure", "NFT", "Macro"}, Required: true},
				{Key: "risk_level", Label: "RISK_LEVEL", Type: model.FieldSelect, Options: []string{"Low", "Med", "High"}, Required: true},
				{Key: "status", Label: "STATUS", Type: model.FieldSelect, Options: []string{"Completed", "Under_Review"}, Required: true},
				{Key: "security", Label: "SECURITY", Type: model.FieldSelect, Options: []string{"PUBLIC", "INTERNAL"}, Required: true},
				{Key: "tokens", Label: "TOKENS", Type: model.FieldArray},
				{Key: "read_time", Label: "READ_TIME", Type: model.FieldText, Required: true},
			},
		},
		{
			Name:       "stats",
			Collection: "site_stats",
			Label:      "SITE_STATS",
			OrderBy:    "sort_order",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "label", Label: "LABEL"},
				{Key: "value", Label: "VALUE"},
				{Key: "sub_detail", Label: "SUB_DETAIL"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "label", Label: "LABEL", Type: model.FieldText, Required: true},
				{Key: "value", Label: "VALUE", Type: model.FieldNumber, Required: true},
				{Key: "suffix", Label: "SUFFIX", Type: model.FieldText},
				{Key: "sub_detail", Label: "SUB_DETAIL", Type: model.FieldText, Required: true},
				{Key: "color", Label: "COLOR (hex)", Type: model.FieldText, Required: true},
				{Key: "sort_order", Label: "SORT_ORDER", Type: model.FieldNumber},
			},
		},
		{
			Name:       "submissions",
			Collection: "contact_submissions",
			Label:      "CONTACT_SUBMISSIONS",
			OrderBy:    "created_at",
			ReadOnly:   true,
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID", Render: truncateID},
				{Key: "org_name", Label: "ORG"},
				{Key: "contact_name", Label: "CONTACT"},
				{Key: "intent", Label: "INTENT"},
				{Key: "message", Label: "MESSAGE"},
				{Key: "created_at", Label: "DATE", Render: formatDate},
			},
			Fields: []model.Field{},
		},
		{
			Name:       "sentiment",
			Collection: "market_sentiment",
			Label:      "MARKET_SENTIMENT",
			OrderBy:    "id",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "indicator_type", Label: "TYPE"},
				{Key: "value", Label: "VALUE"},
				{Key: "classification", Label: "CLASS"},
				{Key: "signal", Label: "SIGNAL"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "indicator_type", Label: "INDICATOR_TYPE", Type: model.FieldSelect, Options: []string{"FEAR_GREED", "BTC_DOMINANCE", "BTC_NETFLOW", "ETH_NETFLOW"}, Required: true},
				{Key: "value", Label: "VALUE", Type: model.FieldText, Required: true},
				{Key: "classification", Label: "CLASSIFICATION", Type: model.FieldText},
				{Key: "change_24h", Label: "CHANGE_24H", Type: model.FieldText},
				{Key: "signal", Label: "SIGNAL", Type: model.FieldSelect, Options: []string{"BULLISH", "BEARISH", "NEUTRAL"}},
			},
		},
		{
			Name:       "community",
			Collection: "community_events",
			Label:      "COMMUNITY_EVENTS",
			OrderBy:    "event_date",
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID"},
				{Key: "title", Label: "TITLE"},
				{Key: "event_type", Label: "TYPE"},
				{Key: "event_date", Label: "DATE", Render: formatDate},
				{Key: "location", Label: "LOCATION"},
				{Key: "is_active", Label: "ACTIVE"},
			},
			Fields: []model.Field{
				{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
				{Key: "title", Label: "TITLE", Type: model.FieldText, Required: true},
				{Key: "description", Label: "DESCRIPTION", Type: model.FieldTextarea, Required: true},
				{Key: "event_type", Label: "TYPE", Type: model.FieldSelect, Options: []string{"meetup", "workshop", "hackathon"}, Required: true},
				{Key: "event_date", Label: "DATE (ISO)", Type: model.FieldText, Required: true},
				{Key: "location", Label: "LOCATION", Type: model.FieldText, Required: true},
				{Key: "max_attendees", Label: "MAX_ATTENDEES", Type: model.FieldNumber},
				{Key: "image_url", Label: "IMAGE_URL", Type: model.FieldText},
				{Key: "is_active", Label: "IS_ACTIVE", Type: model.FieldSelect, Options: []string{"true", "false"}},
				{Key: "sort_order", Label: "SORT_ORDER", Type: model.FieldNumber},
			},
			Mappings: []model.FieldMapping{
				{Key: "is_active", Coerce: model.CoerceBoolString},
				{Key: "max_attendees", Coerce: model.CoerceNumberDefault, Default: 50},
			},
		},
		{
			Name:       "newsletter",
			Collection: "newsletter_subscribers",
			Label:      "NEWSLETTER_SUBS",
			OrderBy:    "subscribed_at",
			ReadOnly:   true,
			DisplayColumns: []model.Column{
				{Key: "id", Label: "ID", Render: truncateID},
				{Key: "email", Label: "EMAIL"},
				{Key: "subscribed_at", Label: "DATE", Render: formatDate},
			},
			Fields: []model.Field{},
		},
	}

	tabs := []Tab{
		{Key: "team", Label: "TEAM"},
		{Key: "news", Label: "NEWS"},
		{Key: "events", Label: "EVENTS"},
		{Key: "community", Label: "COMMUNITY"},
		{Key: "macro", Label: "MACRO"},
		{Key: "gallery", Label: "GALLERY"},
		{Key: "reports", Label: "REPORTS"},
		{Key: "archive", Label: "ARCHIVE"},
		{Key: "stats", Label: "STATS"},
		{Key: "submissions", Label: "INBOX"},
		{Key: "sentiment", Label: "SENTIMENT"},
		{Key: "newsletter", Label: "NEWSLETTER"},
	}

	byName := make(map[string]*model.ResourceSchema, len(schemas))
	for _, s := range schemas {
		if err := s.Validate(); err != nil {
			panic(fmt.Sprintf("invalid resource schema: %v", err))
		}
		byName[s.Name] = s
	}
	for _, t := range tabs {
		if _, ok := byName[t.Key]; !ok {
			panic(fmt.Sprintf("tab %q has no registered schema", t.Key))
		}
	}

	return &Registry{schemas: byName, tabs: tabs}
}
