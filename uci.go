package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/igorjakus/minimax-strikes-back/engine"
	"github.com/igorjakus/minimax-strikes-back/internal/cli"
	"github.com/igorjakus/minimax-strikes-back/rules"
)

const defaultDepth = 4

// maxUCIWeight keeps any combination of advertised weights valid.
const maxUCIWeight = 50000

var weightOptions = []struct {
	name string
	kind engine.PieceKind
}{
	{"PawnWeight", engine.Pawn},
	{"KnightWeight", engine.Knight},
	{"BishopWeight", engine.Bishop},
	{"RookWeight", engine.Rook},
	{"QueenWeight", engine.Queen},
	{"KingWeight", engine.King},
}

func weightOption(name string) (engine.PieceKind, bool) {
	for _, o := range weightOptions {
		if strings.EqualFold(o.name, name) {
			return o.kind, true
		}
	}
	return 0, false
}

func main() {
	logLevel := flag.String("log-level", "warn", "zerolog level (logs go to stderr)")
	flag.Parse()
	uciLoop(os.Stdin, os.Stdout, cli.Logger(*logLevel))
}

// session is the state of one UCI conversation.
type session struct {
	out     io.Writer
	log     zerolog.Logger
	backend string
	cfg     engine.Config
	depth   int

	searcher *engine.Searcher
	pos      rules.Position
}

func newSession(out io.Writer, log zerolog.Logger) *session {
	cfg := engine.DefaultConfig()
	cfg.Logger = log
	s := &session{out: out, log: log, backend: rules.DefaultBackend, cfg: cfg, depth: defaultDepth}
	s.reset()
	return s
}

func (s *session) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *session) info(format string, a ...any) {
	fmt.Fprintf(s.out, "info string "+format+"\n", a...)
}

// reset rebuilds the searcher from cfg and returns to the start position.
func (s *session) reset() {
	searcher, err := engine.NewSearcher(s.cfg)
	if err != nil {
		s.info("%v", err)
		s.log.Error().Err(err).Msg("searcher rejected config, keeping the previous one")
		return
	}
	pos, err := rules.Startpos(s.backend)
	if err != nil {
		s.info("%v", err)
		return
	}
	s.searcher, s.pos = searcher, pos
}

func uciLoop(in io.Reader, out io.Writer, log zerolog.Logger) {
	scanner := bufio.NewScanner(in)
	s := newSession(out, log)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			s.println("id name minimax-strikes-back")
			s.println("id author igorjakus")
			s.println("option name Depth type spin default", defaultDepth, "min 0 max 12")
			s.println("option name Pruning type check default", engine.DefaultConfig().Pruning)
			s.println("option name CacheLeaves type check default", engine.DefaultConfig().CacheLeaves)
			s.println("option name CacheNodes type check default", engine.DefaultConfig().CacheNodes)
			s.println("option name KeepCache type check default", engine.DefaultConfig().KeepCache)
			s.println("option name Mode type combo default material var material var mate-aware")
			s.println("option name Rules type combo default", rules.DefaultBackend, "var", strings.Join(rules.Backends(), " var "))
			for _, o := range weightOptions {
				s.println("option name", o.name, "type spin default", engine.DefaultWeights[o.kind], "min 1 max", maxUCIWeight)
			}
			s.println("uciok")
		case "isready":
			s.println("readyok")
		case "ucinewgame":
			s.reset()
		case "quit":
			return
		case "position":
			s.position(tokens[1:])
		case "go":
			s.goCmd(tokens[1:])
		case "eval":
			s.println("info string eval", s.searcher.Evaluator().Evaluate(s.pos))
		case "d":
			s.println("info string fen", s.pos.FEN())
		case "setoption":
			s.setOption(tokens[1:])
		default:
			s.info("unknown command %s", tokens[0])
		}
	}
}

func (s *session) position(args []string) {
	if len(args) == 0 {
		s.info("Malformed position command")
		return
	}
	var fen string
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = rules.StartFEN
	case "fen":
		i := 0
		for i < len(rest) && strings.ToLower(rest[i]) != "moves" {
			i++
		}
		fen = strings.Join(rest[:i], " ")
		rest = rest[i:]
	default:
		s.info("Invalid position subcommand")
		return
	}
	pos, err := rules.New(s.backend, fen)
	if err != nil {
		s.info("Invalid fen position: %v", err)
		return
	}
	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, uci := range rest[1:] {
			m, err := rules.FindMove(pos, uci)
			if err != nil {
				s.info("Move %s not found for position %s", uci, pos.FEN())
				return
			}
			pos = pos.Apply(m).(rules.Position)
		}
	}
	s.pos = pos
}

func (s *session) goCmd(args []string) {
	depth := s.depth
	for i := 0; i < len(args); i++ {
		switch opt := strings.ToLower(args[i]); opt {
		case "depth":
			if i+1 >= len(args) {
				s.info("Malformed go command option depth")
				continue
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil {
				s.info("Malformed go command option; could not convert depth")
				continue
			}
			depth = d
		case "infinite", "wtime", "btime", "winc", "binc", "movetime", "movestogo":
			// Fixed-depth search only; clock arguments are accepted and ignored.
			if opt != "infinite" {
				i++
			}
		default:
			s.info("Unknown go subcommand %s", args[i])
		}
	}

	start := time.Now()
	res := s.searcher.BestMove(s.pos, depth)
	elapsed := time.Since(start)

	ms := elapsed.Milliseconds()
	nps := uint64(0)
	if ms > 0 {
		nps = res.Stats.Nodes * 1000 / uint64(ms)
	}
	fmt.Fprintf(s.out, "info depth %d score %s nodes %d nps %d time %d pv %s\n",
		depth, uciScore(res, s.pos.SideToMove()), res.Stats.Nodes, nps, ms, res.PV.String())
	for _, l := range res.Stats.Lines() {
		s.println(l)
	}
	if res.Move == nil {
		s.println("bestmove 0000")
		return
	}
	s.println("bestmove", res.Move.String())
}

// uciScore renders a White-relative result from the side to move's point of
// view: "cp N" in centipawns, or "mate N" in moves when the search proved a
// mate. The mate distance comes from the length of the principal variation.
func uciScore(res engine.Result, side engine.Side) string {
	score := int64(res.Score)
	if side == engine.Black {
		score = -score
	}
	plies := len(res.PV.Moves)
	switch {
	case score >= int64(engine.MateScore):
		return fmt.Sprintf("mate %d", (plies+1)/2)
	case score <= -int64(engine.MateScore):
		return fmt.Sprintf("mate %d", -(plies / 2))
	}
	return fmt.Sprintf("cp %d", score*100)
}

// setOption handles "setoption name <Name> value <Value>".
func (s *session) setOption(args []string) {
	if len(args) < 4 || strings.ToLower(args[0]) != "name" || strings.ToLower(args[2]) != "value" {
		s.info("Malformed setoption command")
		return
	}
	name, value := strings.ToLower(args[1]), strings.Join(args[3:], " ")
	cfg := s.cfg
	backend := s.backend

	switch name {
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil || d < 0 {
			s.info("Invalid depth %q", value)
			return
		}
		s.depth = d
		return
	case "pruning", "cacheleaves", "cachenodes", "keepcache":
		b, err := strconv.ParseBool(value)
		if err != nil {
			s.info("Invalid boolean %q for %s", value, args[1])
			return
		}
		switch name {
		case "pruning":
			cfg.Pruning = b
		case "cacheleaves":
			cfg.CacheLeaves = b
		case "cachenodes":
			cfg.CacheNodes = b
		case "keepcache":
			cfg.KeepCache = b
		}
	case "mode":
		mode, err := engine.ParseEvalMode(value)
		if err != nil {
			s.info("%v", err)
			return
		}
		cfg.Mode = mode
	case "rules":
		if _, err := rules.Startpos(value); err != nil {
			s.info("%v", err)
			return
		}
		backend = strings.ToLower(value)
	default:
		kind, ok := weightOption(name)
		if !ok {
			s.info("Unknown option %s", args[1])
			return
		}
		v, err := strconv.Atoi(value)
		if err != nil || v < 1 || v > maxUCIWeight {
			s.info("Invalid weight %q for %s", value, args[1])
			return
		}
		cfg.Weights = cfg.Weights.Set(kind, engine.Score(v))
	}

	if _, err := engine.NewSearcher(cfg); err != nil {
		s.info("%v", err)
		return
	}
	s.log.Debug().Str("option", args[1]).Str("value", value).Msg("setoption")

	fen := s.pos.FEN()
	s.cfg, s.backend = cfg, backend
	s.reset()
	// Keep the current position across option changes; only the backend may
	// have changed.
	if pos, err := rules.New(s.backend, fen); err == nil {
		s.pos = pos
	}
}
