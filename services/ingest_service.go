package services

import (
	"maintdesk-backend/models"
	"maintdesk-backend/utils/logger"
	"time"

	"github.com/tidwall/gjson"
)

// IngestService turns raw scanner payloads (QR / barcode contents) into
// registration candidates. It never fails: unparseable input still yields a
// usable candidate.
type IngestService struct {
	logger logger.Logger
	now    func() time.Time
}

func NewIngestService(logger logger.Logger) *IngestService {
	return &IngestService{
		logger: logger,
		now:    time.Now,
	}
}

// ResolveScanPayload extracts equipment fields from a scanned payload.
// JSON payloads contribute whatever recognized fields they carry; anything
// else is treated as a bare serial number. Missing fields get defaults:
// empty strings, zero hours, install date of today.
func (s *IngestService) ResolveScanPayload(payload string) *models.ScanCandidate {
	candidate := &models.ScanCandidate{
		InstallDate: models.DateOf(s.now()),
	}

	if !gjson.Valid(payload) {
		s.logger.Debugf("Scan payload is not JSON, using it as serial number")
		candidate.SerialNumber = payload
		return candidate
	}

	parsed := gjson.Parse(payload)
	candidate.Name = parsed.Get("name").String()
	candidate.Type = parsed.Get("type").String()
	candidate.Location = parsed.Get("location").String()
	candidate.SerialNumber = parsed.Get("serialNumber").String()
	candidate.Manufacturer = parsed.Get("manufacturer").String()
	candidate.OperatingHours = parsed.Get("operatingHours").Int()

	if raw := parsed.Get("installDate").String(); raw != "" {
		if date, err := models.ParseDate(raw); err == nil {
			candidate.InstallDate = date
		} else {
			s.logger.Debugf("Ignoring unparseable install date %q in scan payload", raw)
		}
	}

	return candidate
}
