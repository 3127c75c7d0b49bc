package siteapi

import "trainerhub-app/internal/domain/sitedoc"

type GetSiteResponse struct {
	Document *sitedoc.Document `json:"document"`
}

type GetWorkingResponse struct {
	Document *sitedoc.Document `json:"document"`
	Dirty    bool              `json:"dirty"`
	State    string            `json:"state"`
}

type SessionStateResponse struct {
	Dirty bool   `json:"dirty"`
	State string `json:"state"`
}
