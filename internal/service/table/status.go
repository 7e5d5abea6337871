package table

import (
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusConverter maps a raw status string to its semantic kind.
type StatusConverter func(raw string) table.StatusKind

// StatusDisplay decides the label and tone shown for a status kind.
type StatusDisplay interface {
	Label(kind table.StatusKind) string
	Tone(kind table.StatusKind) table.StatusTone
}

var defaultStatusLabels = map[table.StatusKind]string{
	table.StatusApproved:     "承認済",
	table.StatusPending:      "申請中",
	table.StatusRejected:     "却下",
	table.StatusSubmitted:    "提出済",
	table.StatusDraft:        "下書き",
	table.StatusNotSubmitted: "未提出",
	table.StatusReturned:     "差し戻し",
}

var statusTones = map[table.StatusKind]table.StatusTone{
	table.StatusApproved:     table.ToneSuccess,
	table.StatusPending:      table.ToneWarning,
	table.StatusRejected:     table.ToneError,
	table.StatusSubmitted:    table.ToneInfo,
	table.StatusDraft:        table.ToneInfo,
	table.StatusNotSubmitted: table.ToneDefault,
	table.StatusReturned:     table.ToneWarning,
}

type statusDisplay struct {
	labels map[table.StatusKind]string
}

// NewStatusDisplay returns the default display. Entries in labels replace default labels;
// an empty custom label keeps the default.
func NewStatusDisplay(labels map[table.StatusKind]string) StatusDisplay {
	merged := make(map[table.StatusKind]string, len(defaultStatusLabels)+len(labels))
	for k, v := range defaultStatusLabels {
		merged[k] = v
	}
	for k, v := range labels {
		if v != "" {
			merged[k] = v
		}
	}
	return &statusDisplay{labels: merged}
}

func (s *statusDisplay) Label(kind table.StatusKind) string {
	if label, ok := s.labels[kind]; ok {
		return label
	}
	// Casers are stateful, so a fresh one per call.
	return cases.Title(language.Und).String(strings.ReplaceAll(string(kind), "_", " "))
}

func (s *statusDisplay) Tone(kind table.StatusKind) table.StatusTone {
	if tone, ok := statusTones[kind]; ok {
		return tone
	}
	return table.ToneDefault
}

// ConvertStatus is the default converter: it normalizes case and separators, so
// "Not-Submitted" and "not submitted" both map to not_submitted.
func ConvertStatus(raw string) table.StatusKind {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	return table.StatusKind(normalized)
}
