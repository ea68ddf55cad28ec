package sources

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/vehicle-check-api/audit"
	"github.com/linesmerrill/vehicle-check-api/models"
)

var insuranceNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func newInsuranceTestClient(t *testing.T, rec *recordingAudit, body string) *InsuranceClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := NewInsuranceClient(srv.URL, false, rec)
	c.now = func() time.Time { return insuranceNow }
	return c
}

func coverNoteXML(notes ...string) string {
	body := ""
	for _, n := range notes {
		body += n
	}
	return `<response><message>ok</message><body>` + body + `</body></response>`
}

func coverNoteEntry(status string, end time.Time) string {
	return fmt.Sprintf(`<data><statusTitle>%s</statusTitle><coverNoteEndDate>%d</coverNoteEndDate></data>`, status, end.UnixMilli())
}

func TestInsuranceClient_FetchNoRecord(t *testing.T) {
	rec := &recordingAudit{}
	c := newInsuranceTestClient(t, rec, coverNoteXML())

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	assert.Equal(t, models.InsuranceNoRecord, res.Status)
	assert.Nil(t, res.ExpiredDays)
	assert.Nil(t, res.RemainingDays)
	assert.Empty(t, rec.all())
}

func TestInsuranceClient_FetchExpired(t *testing.T) {
	rec := &recordingAudit{}
	c := newInsuranceTestClient(t, rec, coverNoteXML(
		coverNoteEntry("EXPIRED", insuranceNow.Add(-30*24*time.Hour)),
	))

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	assert.Equal(t, models.InsuranceExpired, res.Status)
	if assert.NotNil(t, res.ExpiredDays) {
		assert.Equal(t, 30, *res.ExpiredDays)
	}

	entries := rec.all()
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0], "30 days ago")
}

func TestInsuranceClient_FetchExpiredUsesFirstEntryInDocumentOrder(t *testing.T) {
	rec := &recordingAudit{}
	c := newInsuranceTestClient(t, rec, coverNoteXML(
		coverNoteEntry("EXPIRED", insuranceNow.Add(-10*24*time.Hour)),
		coverNoteEntry("EXPIRED", insuranceNow.Add(-3*24*time.Hour)),
	))

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	if assert.NotNil(t, res.ExpiredDays) {
		// first entry wins even though the second is more recent
		assert.Equal(t, 10, *res.ExpiredDays)
	}
}

func TestInsuranceClient_FetchExpiredUnknownEndDate(t *testing.T) {
	rec := &recordingAudit{}
	c := newInsuranceTestClient(t, rec,
		coverNoteXML(`<data><statusTitle>EXPIRED</statusTitle></data>`))

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	assert.Equal(t, models.InsuranceExpired, res.Status)
	assert.Nil(t, res.ExpiredDays)
	assert.Empty(t, rec.all())
}

func TestInsuranceClient_FetchActive(t *testing.T) {
	end := insuranceNow.Add(5 * 24 * time.Hour)
	rec := &recordingAudit{}
	c := newInsuranceTestClient(t, rec, coverNoteXML(coverNoteEntry("Active", end)))

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	assert.Equal(t, models.InsuranceActive, res.Status)
	assert.Equal(t, end.Format("2006-01-02"), res.ValidTill)
	if assert.NotNil(t, res.RemainingDays) {
		assert.Equal(t, 5, *res.RemainingDays)
	}
	assert.Empty(t, rec.all())
}

func TestInsuranceClient_FetchActivePrecedesExpiredEntries(t *testing.T) {
	c := newInsuranceTestClient(t, &recordingAudit{}, coverNoteXML(
		coverNoteEntry("EXPIRED", insuranceNow.Add(-40*24*time.Hour)),
		coverNoteEntry("ACTIVE", insuranceNow.Add(20*24*time.Hour)),
	))

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	assert.Equal(t, models.InsuranceActive, res.Status)
	if assert.NotNil(t, res.RemainingDays) {
		assert.Equal(t, 20, *res.RemainingDays)
	}
}

func TestInsuranceClient_FetchActivePastEndDateStaysNegative(t *testing.T) {
	c := newInsuranceTestClient(t, &recordingAudit{}, coverNoteXML(
		coverNoteEntry("ACTIVE", insuranceNow.Add(-2*24*time.Hour)),
	))

	res, err := c.Fetch(context.Background(), "T123ABC")
	assert.NoError(t, err)
	assert.Equal(t, models.InsuranceActive, res.Status)
	if assert.NotNil(t, res.RemainingDays) {
		assert.Equal(t, -2, *res.RemainingDays)
	}
}

func TestInsuranceClient_FetchActiveBadEndDateIsError(t *testing.T) {
	c := newInsuranceTestClient(t, &recordingAudit{},
		coverNoteXML(`<data><statusTitle>ACTIVE</statusTitle><coverNoteEndDate>soon</coverNoteEndDate></data>`))

	_, err := c.Fetch(context.Background(), "T123ABC")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestInsuranceClient_FetchBadXML(t *testing.T) {
	c := newInsuranceTestClient(t, &recordingAudit{}, `<response><data>`)

	_, err := c.Fetch(context.Background(), "T123ABC")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestInsuranceClient_FetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewInsuranceClient(srv.URL, false, &recordingAudit{})

	_, err := c.Fetch(context.Background(), "T123ABC")
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestNewInsuranceClientInsecureTransport(t *testing.T) {
	c := NewInsuranceClient("https://example.invalid", true, audit.Nop{})
	transport, ok := c.HTTP.Transport.(*http.Transport)
	if assert.True(t, ok) {
		assert.Equal(t, &tls.Config{InsecureSkipVerify: true}, transport.TLSClientConfig)
	}

	c = NewInsuranceClient("https://example.invalid", false, audit.Nop{})
	assert.Nil(t, c.HTTP.Transport)
}
