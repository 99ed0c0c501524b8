package http

import (
	"pelangi-assistant/internal/memory"
	"pelangi-assistant/internal/report"
)

type runReq struct {
	Date string `json:"date"`
}

func (r runReq) validate() error {
	if r.Date == "" {
		return nil
	}
	return memory.ValidateDate(r.Date)
}

type runResp struct {
	Date      string            `json:"date"`
	Text      string            `json:"text"`
	SavedTo   string            `json:"saved_to,omitempty"`
	Delivered []string          `json:"delivered"`
	Failed    map[string]string `json:"failed,omitempty"`
}

func newRunResp(r report.Result) runResp {
	delivered := r.Delivered
	if delivered == nil {
		delivered = []string{}
	}
	return runResp{
		Date:      r.Report.Date,
		Text:      r.Report.Text,
		SavedTo:   r.SavedTo,
		Delivered: delivered,
		Failed:    r.Failed,
	}
}
