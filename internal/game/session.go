// Package game wires the investigation engine to the player: it owns every structure of a session, runs the
// turn loop and renders what happens as lines of text.
package game

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/navigator"
	"github.com/myrjola/detectivequest/internal/repositories"
	"github.com/myrjola/detectivequest/internal/sqlite"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/myrjola/detectivequest/internal/verdict"
)

var ErrSessionActive = errors.NewSentinel("session is still exploring")

// Options tune a session.
type Options struct {
	DeadEnd navigator.DeadEndPolicy
	Reveal  RevealMode
	Pause   bool
}

// Session owns the mansion, the suspect index, the clue ledger and the journal for its whole lifetime.
type Session struct {
	id       string
	caseFile models.Case
	rooms    *mansion.Map
	index    *suspects.Index
	clues    *ledger.Ledger
	nav      *navigator.Navigator
	opening  []navigator.Event
	db       *sqlite.Database
	journal  *repositories.JournalRepository

	in     Input
	out    Output
	pauser Pauser
	opts   Options
	logger *slog.Logger
	closed bool
}

// NewSession builds the mansion and the suspect index and starts the exploration in the entry room.
func NewSession(ctx context.Context, in Input, out Output, pauser Pauser, opts Options, logger *slog.Logger) (*Session, error) {
	id := uuid.NewString()
	ctx = logging.WithAttrs(ctx, slog.String("session", id))
	c := models.MansionCase()

	db, err := sqlite.NewDatabase(ctx, logger)
	if err != nil {
		return nil, errors.Wrap(err, "create journal database")
	}
	journal := repositories.NewJournalRepository(db, logger)
	if err = journal.StartSession(ctx, id, c.Title); err != nil {
		_ = db.Close(ctx)
		return nil, errors.Wrap(err, "start journal")
	}

	s := &Session{
		id:       id,
		caseFile: c,
		rooms:    mansion.Build(),
		index:    suspects.Build(c.Attributions),
		clues:    ledger.New(),
		nav:      nil,
		opening:  nil,
		db:       db,
		journal:  journal,
		in:       in,
		out:      out,
		pauser:   pauser,
		opts:     opts,
		logger:   logger.With("source", "Session"),
		closed:   false,
	}
	s.nav, s.opening = navigator.New(ctx, s.rooms, s.index, s.clues, s, opts.DeadEnd, logger)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "session started",
		slog.String("dead_end", string(opts.DeadEnd)), slog.Int("rooms", s.rooms.Len()))
	return s, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Run plays the session to the end: exploration, case report, accusation, verdict and the optional reveal.
func (s *Session) Run(ctx context.Context) (verdict.Result, error) {
	ctx = logging.WithAttrs(ctx, slog.String("session", s.id))

	s.out.Show(ToneHeading, "=== "+strings.ToUpper(s.caseFile.Title)+" ===")
	if err := s.report(ctx, s.opening); err != nil {
		return verdict.Result{}, err
	}

	for s.nav.State() == navigator.StateActive {
		s.showStatus()
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			return verdict.Result{}, errors.Wrap(err, "read command")
		}
		events, err := s.nav.Step(ctx, ParseCommand(line))
		if err != nil {
			return verdict.Result{}, errors.Wrap(err, "step")
		}
		if err = s.report(ctx, events); err != nil {
			return verdict.Result{}, err
		}
	}

	s.showCaseReport(ctx)

	result, err := s.accuse(ctx)
	if err != nil {
		return verdict.Result{}, err
	}
	if err = s.reveal(ctx, result.Accused); err != nil {
		return result, err
	}
	return result, nil
}

// Confirm asks a yes/no question on behalf of the navigator.
func (s *Session) Confirm(ctx context.Context, prompt navigator.Prompt) (bool, error) {
	s.out.Show(TonePrompt, promptText(prompt))
	line, err := s.in.ReadLine(ctx)
	if err != nil {
		return false, errors.Wrap(err, "read confirmation")
	}
	return parseYes(line), nil
}

func (s *Session) showStatus() {
	status := s.nav.Status()
	s.out.Show(ToneHeading, "Voce esta na: "+status.Room)
	s.out.Show(ToneNarrative, "Pistas coletadas: "+strconv.Itoa(status.Collected))
	if status.AllVisited {
		s.out.Show(ToneNotice, "Todas as salas foram exploradas! Voce pode continuar ou sair quando quiser.")
	}
	s.out.Show(ToneNarrative, "Caminhos disponiveis:")
	if status.Left != "" {
		s.out.Show(ToneNarrative, "[e] Esquerda -> "+status.Left)
	}
	if status.Right != "" {
		s.out.Show(ToneNarrative, "[d] Direita  -> "+status.Right)
	}
	s.out.Show(ToneNarrative, "[s] Sair da exploracao")
	s.out.Show(TonePrompt, "Para onde deseja ir?")
}

// report renders the events, records them in the journal and pauses after notices the player should read.
func (s *Session) report(ctx context.Context, events []navigator.Event) error {
	pause := false
	for _, e := range events {
		for _, line := range eventLines(e) {
			s.out.Show(line.tone, line.text)
		}
		s.record(ctx, e)
		switch e.Kind { //nolint:exhaustive // the rest needs no acknowledgement
		case navigator.EventNoPath, navigator.EventInvalidCommand, navigator.EventDeadEnd:
			pause = true
		}
	}
	if pause && s.opts.Pause {
		if err := s.pauser.Pause(ctx); err != nil {
			return errors.Wrap(err, "pause")
		}
	}
	return nil
}

// record keeps the journal. A journal failure only costs the final report, so it is logged and ignored.
func (s *Session) record(ctx context.Context, e navigator.Event) {
	entry := models.JournalEntry{Order: 0, Kind: e.Kind.String(), Room: e.Room, Clue: e.Clue, Suspect: e.Suspect}
	if err := s.journal.Record(ctx, s.id, entry); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to record turn", errors.SlogError(err))
	}
}

func (s *Session) showCaseReport(ctx context.Context) {
	s.out.Show(ToneHeading, "=== RELATORIO DO CASO ===")

	rooms, err := s.journal.RoomsEntered(ctx, s.id, navigator.EventEntered.String())
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to read journal", errors.SlogError(err))
	} else if len(rooms) > 0 {
		s.out.Show(ToneNarrative, "Caminho percorrido: "+strings.Join(rooms, " -> "))
	}

	if s.clues.Count() == 0 {
		s.out.Show(ToneNotice, "Nenhuma pista foi coletada.")
		return
	}
	s.out.Show(ToneNarrative, "Pistas coletadas ("+strconv.Itoa(s.clues.Count())+"):")
	for clue := range s.clues.InOrder() {
		s.out.Show(ToneClue, "- "+clue+" (aponta para "+s.suspectName(s.index.Lookup(clue))+")")
	}
}

func (s *Session) accuse(ctx context.Context) (verdict.Result, error) {
	s.out.Show(ToneHeading, "=== HORA DA ACUSACAO ===")
	s.out.Show(ToneNarrative, "Suspeitos: "+strings.Join(s.index.Suspects(), ", "))

	var accused string
	for accused == "" {
		s.out.Show(TonePrompt, "Quem e o culpado?")
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			return verdict.Result{}, errors.Wrap(err, "read accusation")
		}
		accused = strings.TrimSpace(line)
	}

	result := verdict.Judge(s.clues, s.index, accused)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "verdict",
		slog.String("accused", accused), slog.String("outcome", result.Outcome.String()), slog.Int("count", result.Count))
	for _, line := range verdictLines(result) {
		s.out.Show(line.tone, line.text)
	}
	return result, nil
}

func (s *Session) reveal(ctx context.Context, accused string) error {
	switch s.opts.Reveal {
	case RevealNever:
		return nil
	case RevealAsk:
		s.out.Show(TonePrompt, "Deseja ver a solucao do caso? (s/n)")
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			return errors.Wrap(err, "read reveal answer")
		}
		if !parseYes(line) {
			return nil
		}
	case RevealAlways:
	}

	for _, line := range revelationLines(verdict.Reveal(s.caseFile.Truth, s.clues, accused)) {
		s.out.Show(line.tone, line.text)
	}
	return nil
}

func (s *Session) suspectName(name string) string {
	if name == suspects.Unknown {
		return "suspeito desconhecido"
	}
	return name
}

// Close tears the session down once the exploration has exited. Rooms, clues and index chains are
// released children first, then the journal database is closed.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	if s.nav.State() != navigator.StateExited {
		return ErrSessionActive
	}
	s.closed = true

	ctx = logging.WithAttrs(ctx, slog.String("session", s.id))
	rooms := s.rooms.Release()
	clues := s.clues.Release()
	entries := s.index.Release()
	s.logger.LogAttrs(ctx, slog.LevelDebug, "released session",
		slog.Int("rooms", rooms), slog.Int("clues", clues), slog.Int("index_entries", entries))

	if err := s.db.Close(ctx); err != nil {
		return errors.Wrap(err, "close journal")
	}
	return nil
}
