package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"trial-hand/config"
	"trial-hand/models"
	"trial-hand/sources"
	"trial-hand/storage"
)

// CustomTransport fügt jeder Anfrage einen User-Agent-Header hinzu.
type CustomTransport struct {
	Transport http.RoundTripper
}

func (t *CustomTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36")
	return t.Transport.RoundTrip(req)
}

// httpClient wird für alle externen HTTP-Anfragen in diesem Service verwendet.
var httpClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &CustomTransport{
		Transport: http.DefaultTransport,
	},
}

// Sink persistiert das Ergebnis eines Konvertierungslaufs.
type Sink interface {
	SaveStudies(ctx context.Context, studies []*models.Study) error
}

// ImportService orchestriert den gesamten Import: Export herunterladen,
// archivieren, konvertieren, speichern.
type ImportService struct {
	Config   *config.Config
	Sink     Sink
	S3Client *s3.Client
	Logger   *zap.Logger
	Sources  []sources.Source
}

// NewImportService erstellt eine neue Instanz des ImportService.
func NewImportService(cfg *config.Config, sink Sink, s3 *s3.Client, logger *zap.Logger, srcs []sources.Source) *ImportService {
	return &ImportService{
		Config:   cfg,
		Sink:     sink,
		S3Client: s3,
		Logger:   logger,
		Sources:  srcs,
	}
}

// RunAll führt den Import für alle konfigurierten Quellen aus und gibt die
// Gesamtzahl der gespeicherten Studien zurück.
func (f *ImportService) RunAll(ctx context.Context) (int, error) {
	total := 0
	for _, src := range f.Sources {
		count, err := f.RunSource(ctx, src)
		if err != nil {
			f.Logger.Error("Import für Quelle fehlgeschlagen",
				zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		total += count
	}
	return total, nil
}

// RunSource führt den Import für eine einzelne Quelle aus.
func (f *ImportService) RunSource(ctx context.Context, src sources.Source) (int, error) {
	log := f.Logger.With(zap.String("source", src.Name()))
	log.Info("Starte Import-Lauf.")

	data, err := f.downloadExport(ctx, f.Config.CTISExportURL)
	if err != nil {
		return 0, fmt.Errorf("downloading export: %w", err)
	}
	log.Info("Export heruntergeladen", zap.Int("bytes", len(data)))

	// Das Roharchiv ist Diagnose-Material; ein Fehlschlag bricht den Lauf nicht ab.
	if f.S3Client != nil {
		if err := f.archiveExport(ctx, src.Name(), data); err != nil {
			log.Warn("Archivierung des Exports fehlgeschlagen", zap.Error(err))
		}
	}

	studies, err := src.Convert(ctx, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("converting export: %w", err)
	}
	log.Info("Konvertierung abgeschlossen", zap.Int("studies", len(studies)))

	if err := f.Sink.SaveStudies(ctx, studies); err != nil {
		return 0, fmt.Errorf("saving studies: %w", err)
	}

	log.Info("Import-Lauf abgeschlossen", zap.Int("studies", len(studies)))
	return len(studies), nil
}

// downloadExport lädt den CSV-Export von der Registry herunter.
func (f *ImportService) downloadExport(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// archiveExport legt den Export gzip-komprimiert im S3 ab.
func (f *ImportService) archiveExport(ctx context.Context, source string, data []byte) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	key := fmt.Sprintf("exports/%s-%s.csv.gz", source, time.Now().UTC().Format("2006-01-02T15-04-05"))
	link, err := storage.UploadFile(ctx, f.S3Client, f.Config, key, buf.Bytes())
	if err != nil {
		return err
	}
	f.Logger.Info("Export archiviert", zap.String("s3_link", link))
	return nil
}
