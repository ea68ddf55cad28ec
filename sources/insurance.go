package sources

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/linesmerrill/vehicle-check-api/audit"
	"github.com/linesmerrill/vehicle-check-api/models"
)

const (
	// paramType 2 selects the plate-number search on the cover note portal
	insuranceParamTypePlate = 2
	insuranceOrigin         = "https://tiramis.tira.go.tz"
	insuranceUserAgent      = "Mozilla/5.0"

	coverNoteDateLayout = "2006-01-02"
)

// InsuranceClient queries the insurance regulator's public cover note portal
// and derives the coverage state from the returned cover note entries
type InsuranceClient struct {
	URL   string
	HTTP  *http.Client
	Audit audit.Logger

	// now is swapped out in tests so day arithmetic is deterministic
	now func() time.Time
}

// NewInsuranceClient returns an insurance client with the bounded per-call
// timeout applied. The portal serves a certificate that fails verification,
// so skipping verification is expected in production and controlled by
// config rather than hardcoded.
func NewInsuranceClient(url string, skipTLSVerify bool, auditor audit.Logger) *InsuranceClient {
	client := &http.Client{Timeout: InsuranceTimeout}
	if skipTLSVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &InsuranceClient{
		URL:   url,
		HTTP:  client,
		Audit: auditor,
		now:   time.Now,
	}
}

type insuranceRequest struct {
	ParamType   int    `json:"paramType"`
	SearchParam string `json:"searchParam"`
}

// coverNote is one "data" entry from the portal's XML payload
type coverNote struct {
	StatusTitle      string `xml:"statusTitle"`
	CoverNoteEndDate string `xml:"coverNoteEndDate"`
}

// Fetch derives the insurance coverage state for the plate
func (c *InsuranceClient) Fetch(ctx context.Context, plate string) (models.InsuranceResult, error) {
	body, err := json.Marshal(insuranceRequest{ParamType: insuranceParamTypePlate, SearchParam: plate})
	if err != nil {
		return models.InsuranceResult{}, &ParseError{Op: "insurance lookup", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return models.InsuranceResult{}, &TransportError{Op: "insurance lookup", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", insuranceOrigin)
	req.Header.Set("User-Agent", insuranceUserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.InsuranceResult{}, &TransportError{Op: "insurance lookup", Err: err}
	}
	defer resp.Body.Close()

	entries, err := parseCoverNotes(resp.Body)
	if err != nil {
		return models.InsuranceResult{}, &ParseError{Op: "insurance lookup", Err: err}
	}

	if len(entries) == 0 {
		return models.InsuranceResult{Status: models.InsuranceNoRecord}, nil
	}

	var active *coverNote
	for i := range entries {
		if strings.EqualFold(entries[i].StatusTitle, "ACTIVE") {
			active = &entries[i]
			break
		}
	}

	now := c.now()

	if active == nil {
		// No active cover note. Days expired come from the first entry in
		// document order, matching what the portal itself displays.
		end, err := parseCoverNoteEnd(entries[0].CoverNoteEndDate)
		if err != nil {
			return models.InsuranceResult{Status: models.InsuranceExpired}, nil
		}
		days := wholeDays(now.Sub(end))
		c.Audit.Alert(fmt.Sprintf("❌ Insurance expired for %s – %d days ago", plate, days))
		return models.InsuranceResult{
			Status:      models.InsuranceExpired,
			ExpiredDays: &days,
		}, nil
	}

	end, err := parseCoverNoteEnd(active.CoverNoteEndDate)
	if err != nil {
		return models.InsuranceResult{}, &ParseError{Op: "insurance lookup", Err: err}
	}

	// May be negative when the status says active but the end date has
	// passed. That mismatch is surfaced as-is, not corrected.
	days := wholeDays(end.Sub(now))
	return models.InsuranceResult{
		Status:        models.InsuranceActive,
		ValidTill:     end.Format(coverNoteDateLayout),
		RemainingDays: &days,
	}, nil
}

// parseCoverNotes collects every "data" element in the document, at any
// depth, in document order
func parseCoverNotes(r io.Reader) ([]coverNote, error) {
	dec := xml.NewDecoder(r)
	var notes []coverNote
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "data" {
			continue
		}
		var n coverNote
		if err := dec.DecodeElement(&n, &se); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// parseCoverNoteEnd converts the portal's milliseconds-since-epoch end date
func parseCoverNoteEnd(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("cover note end date %q: %w", s, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// wholeDays truncates a duration to whole days with no rounding correction
func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
