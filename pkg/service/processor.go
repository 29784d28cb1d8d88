package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/resultado/pkg/config"
	"github.com/yurifrl/resultado/pkg/extractor"
	"github.com/yurifrl/resultado/pkg/models"
	"github.com/yurifrl/resultado/pkg/store"
)

// Processor drives extraction over a directory of workbook files and
// persists the validated records.
type Processor struct {
	config    *config.Config
	logger    *log.Logger
	extractor *extractor.Extractor
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config:    cfg,
		logger:    logger,
		extractor: extractor.New(logger, cfg.Extraction),
	}
}

// ProcessDirectory extracts every workbook in dir and stores the records
// that pass validation. Per-file failures are logged, never fatal for the
// rest of the batch.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".xls") && !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xlsm") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return fmt.Errorf("no workbook files found in %s", dir)
	}

	records := p.extractor.ExtractBatch(paths)
	if len(records) == 0 {
		p.logger.Warn("no years extracted", "dir", dir, "files", len(paths))
		return nil
	}

	return p.storeRecords(dir, records)
}

func (p *Processor) storeRecords(dir string, records map[int]*models.YearRecord) error {
	outDir := p.config.OutputPath
	if outDir == "" {
		outDir = filepath.Join(dir, "records")
	}
	st, err := store.NewFileStore(outDir)
	if err != nil {
		return err
	}

	stored := 0
	for year, rec := range records {
		if err := store.Validate(rec); err != nil {
			p.logger.Warn("record failed validation", "year", year, "reason", err)
			continue
		}
		if err := st.Put(year, rec); err != nil {
			p.logger.Error("failed to store record", "year", year, "error", err)
			continue
		}
		stored++
	}

	p.logger.Info("processing complete", "attempted", len(records), "stored", stored, "output", outDir)
	return nil
}
