package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deckcheck/internal"
	"deckcheck/internal/catalog"
	"deckcheck/internal/config"
	"deckcheck/internal/storage"
	"deckcheck/internal/util"
)

var (
	ErrEmptyCommander = errors.New("commander name is empty")
	ErrNoDeckLines    = fmt.Errorf("%w: deck list has no card lines", ErrContentNotFound)
)

// Fetcher retrieves the raw average deck page for a slug.
type Fetcher interface {
	FetchAverageDeck(ctx context.Context, slug string) ([]byte, error)
}

type ProcessingService struct {
	cfg        config.Config
	fetcher    Fetcher
	workspace  *storage.Workspace
	extractor  *Extractor
	normalizer Normalizer
	log        *zap.Logger
}

func NewProcessingService(cfg config.Config, fetcher Fetcher, log *zap.Logger) *ProcessingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProcessingService{
		cfg:        cfg,
		fetcher:    fetcher,
		workspace:  storage.NewWorkspace(cfg.OutputDir),
		extractor:  NewExtractor(cfg),
		normalizer: Normalizer{Trim: cfg.TrimMode},
		log:        log,
	}
}

// Outcome describes one run for one commander or deck list. Trail lists the
// states visited, ending in StateDone or StateReportedFailure. Err is set
// whenever something must be reported to the user, including content that
// was not found.
type Outcome struct {
	RunID     string
	Source    internal.SourceKind
	Commander string
	Slug      string
	Dir       string
	DeckPath  string
	Records   []internal.DeckRecord

	Reconciled   bool
	Result       internal.ReconciliationResult
	OwnedPath    string
	NotOwnedPath string

	Warnings []error
	Trail    []internal.RunState
	Err      error
}

func (o *Outcome) enter(state internal.RunState) {
	o.Trail = append(o.Trail, state)
}

// State is the last state the run reached.
func (o Outcome) State() internal.RunState {
	if len(o.Trail) == 0 {
		return ""
	}
	return o.Trail[len(o.Trail)-1]
}

func (o Outcome) Failed() bool {
	return o.State() == internal.StateReportedFailure
}

// ScrapeCommander fetches the average deck page for a commander, writes
// <slug>.csv and reconciles it against the collection when one is present.
// The output directory is created up front and removed again when nothing
// was written to it.
func (s *ProcessingService) ScrapeCommander(ctx context.Context, commander string) Outcome {
	out := s.begin(internal.SourceNetwork, commander)
	log := s.log.With(zap.String("run_id", out.RunID), zap.String("source", string(out.Source)))

	out.Slug = util.Slug(commander)
	if out.Slug == "" {
		return s.fail(log, out, ErrEmptyCommander)
	}
	log = log.With(zap.String("slug", out.Slug))

	dir, created, err := s.workspace.Provision(util.FolderName(out.Slug))
	if err != nil {
		return s.fail(log, out, fmt.Errorf("create output directory: %w", err))
	}
	out.Dir = dir
	log.Debug("output directory ready", zap.String("dir", dir), zap.Bool("created", created))

	out.enter(internal.StateFetching)
	log.Info("fetching average deck", zap.String("commander", commander))
	page, err := s.fetcher.FetchAverageDeck(ctx, out.Slug)
	if err != nil {
		return s.fail(log, out, err)
	}

	text, used, err := s.extractor.Extract(page)
	if errors.Is(err, ErrContentNotFound) {
		return s.absent(log, out, err)
	}
	if err != nil {
		return s.fail(log, out, err)
	}
	if used != s.extractor.Strategy {
		log.Warn("deck list located by deprecated structural path")
	}

	out.enter(internal.StateContentFound)
	records, warnings := s.normalizer.Normalize(text)
	out.Records = records
	s.warn(log, &out, warnings...)
	return s.finish(log, out)
}

// ProcessDeckFile runs the same classification for a local deck list file.
// Its output directory carries the configured local suffix.
func (s *ProcessingService) ProcessDeckFile(path string) Outcome {
	out := s.begin(internal.SourceFile, "")
	log := s.log.With(zap.String("run_id", out.RunID), zap.String("source", string(out.Source)), zap.String("path", path))

	out.enter(internal.StateReading)
	deck, err := ReadDeckFile(path)
	if err != nil {
		return s.fail(log, out, err)
	}
	out.Commander = deck.Commander
	out.Slug = util.Slug(deck.Commander)
	if out.Slug == "" {
		return s.fail(log, out, ErrEmptyCommander)
	}
	log = log.With(zap.String("slug", out.Slug))
	log.Debug("deck list header read", zap.String("label", deck.Label), zap.String("commander", deck.Commander))

	if len(deck.Records) == 0 {
		return s.absent(log, out, ErrNoDeckLines)
	}

	dir, _, err := s.workspace.Provision(util.FolderName(out.Slug) + s.cfg.LocalDirSuffix)
	if err != nil {
		return s.fail(log, out, fmt.Errorf("create output directory: %w", err))
	}
	out.Dir = dir

	out.enter(internal.StateContentFound)
	out.Records = deck.Records
	s.warn(log, &out, deck.Warnings...)
	return s.finish(log, out)
}

func (s *ProcessingService) begin(source internal.SourceKind, commander string) Outcome {
	out := Outcome{RunID: uuid.NewString(), Source: source, Commander: commander}
	out.enter(internal.StateStart)
	return out
}

// finish writes the deck CSV and, when the collection can be loaded, the
// owned and not owned partitions.
func (s *ProcessingService) finish(log *zap.Logger, out Outcome) Outcome {
	out.enter(internal.StateWriting)
	out.DeckPath = filepath.Join(out.Dir, util.FolderName(out.Slug)+".csv")
	if err := WriteRecordsCSV(out.Records, out.DeckPath); err != nil {
		return s.fail(log, out, fmt.Errorf("write deck csv: %w", err))
	}
	log.Info("content saved", zap.String("path", out.DeckPath), zap.Int("records", len(out.Records)))

	index, err := catalog.LoadCollection(s.cfg.CollectionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("collection file not found, skipping comparison", zap.String("collection", s.cfg.CollectionPath))
		} else {
			log.Warn("collection unusable, skipping comparison", zap.Error(err))
		}
		out.Warnings = append(out.Warnings, err)
		out.enter(internal.StateDone)
		return out
	}

	out.enter(internal.StateReconciling)
	result := NewReconciler(s.cfg.MatchPolicy, index).Reconcile(out.Records)
	for _, skipped := range result.Skipped {
		log.Warn("record without a card name left out of comparison", zap.String("quantity", skipped.Quantity))
	}

	out.OwnedPath = filepath.Join(out.Dir, OwnedFileName)
	if err := WriteRecordsCSV(result.Owned, out.OwnedPath); err != nil {
		return s.fail(log, out, fmt.Errorf("write owned cards: %w", err))
	}
	out.NotOwnedPath = filepath.Join(out.Dir, NotOwnedFileName)
	if err := WriteRecordsCSV(result.NotOwned, out.NotOwnedPath); err != nil {
		return s.fail(log, out, fmt.Errorf("write not owned cards: %w", err))
	}

	out.Reconciled = true
	out.Result = result
	log.Info("comparison completed",
		zap.Int("collection_size", index.Len()),
		zap.String("match_policy", string(s.cfg.MatchPolicy)),
		zap.Int("owned", len(result.Owned)),
		zap.Int("not_owned", len(result.NotOwned)),
	)
	out.enter(internal.StateDone)
	return out
}

func (s *ProcessingService) absent(log *zap.Logger, out Outcome, err error) Outcome {
	out.enter(internal.StateContentAbsent)
	out.Err = err
	log.Warn("deck list content not found", zap.Error(err))
	s.cleanup(log, &out)
	out.enter(internal.StateDone)
	return out
}

func (s *ProcessingService) fail(log *zap.Logger, out Outcome, err error) Outcome {
	out.enter(internal.StateTransportOrIOError)
	out.Err = err
	log.Error("run failed", zap.Error(err))
	s.cleanup(log, &out)
	out.enter(internal.StateReportedFailure)
	return out
}

func (s *ProcessingService) cleanup(log *zap.Logger, out *Outcome) {
	out.enter(internal.StateCleanupEmptyDir)
	if out.Dir == "" {
		return
	}
	removed, err := s.workspace.RemoveIfEmpty(out.Dir)
	if err != nil {
		log.Warn("output directory kept", zap.String("dir", out.Dir), zap.Error(err))
		return
	}
	if removed {
		log.Info("empty output directory deleted", zap.String("dir", out.Dir))
	}
}

func (s *ProcessingService) warn(log *zap.Logger, out *Outcome, warnings ...error) {
	for _, w := range warnings {
		log.Warn("malformed deck line", zap.Error(w))
		out.Warnings = append(out.Warnings, w)
	}
}
