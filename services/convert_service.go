package services

// ConvertService runs the full pipeline: decoded JSON payload in, GPX
// document out. It holds no state beyond the resolved config, so one
// instance per conversion is fine.
type ConvertService struct {
	cfg Config
	gpx *GPXService
}

func NewConvertService(cfg Config) *ConvertService {
	return &ConvertService{cfg: cfg, gpx: NewGPXService(cfg.BaseURL)}
}

// Convert transforms a decoded JSON payload into GPX bytes and reports how
// many points were converted.
func (s *ConvertService) Convert(payload any) ([]byte, int, error) {
	records, err := ExtractRecords(payload)
	if err != nil {
		return nil, 0, err
	}
	points, err := BuildPoints(records)
	if err != nil {
		return nil, 0, err
	}
	groups := GroupPoints(points, s.cfg.GroupByKind, s.cfg.GroupName)
	doc, err := s.gpx.Serialize(groups, s.cfg.UseExtensions)
	if err != nil {
		return nil, 0, err
	}
	return doc, len(points), nil
}
