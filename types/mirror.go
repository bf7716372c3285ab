package types

type MirrorListParams struct {
	Version    string `uri:"version" binding:"required"`
	Repository string `uri:"repository" binding:"required"`
}

type ISOListParams struct {
	Arch    string `uri:"arch" binding:"required"`
	Version string `uri:"version" binding:"required"`
}

type NearestMirrorsQuery struct {
	EmptyOnUnknown bool `form:"empty_on_unknown" binding:"omitempty"`
}

type ISOMirror struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ISOListResponse struct {
	Nearest   []ISOMirror            `json:"nearest"`
	ByCountry map[string][]ISOMirror `json:"by_country"`
}
