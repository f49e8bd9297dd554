package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/instrument"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"github.com/jsphweid/fretwise/voicing"
)

var serveDebug bool

func init() {
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "verbose request logging")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves highlight maps, voicings, diagrams and catalog lookups over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	initLogger(serveDebug)
	router := NewRouter()
	handler := cors.Default().Handler(withRequestLog(router))
	addr := ":" + constants.GetPort()
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
	}
}

// NewRouter wires every handler; exported so the e2e suite can drive the
// full routing table through httptest.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scales", HandleScales).Methods("GET")
	router.HandleFunc("/scales/{name}", HandleScale).Methods("GET")
	router.HandleFunc("/chords", HandleChords).Methods("GET")
	router.HandleFunc("/chords/{name}", HandleChord).Methods("GET")
	router.HandleFunc("/intervals/{semitones}", HandleInterval).Methods("GET")
	router.HandleFunc("/highlight", HandleHighlight).Methods("POST")
	router.HandleFunc("/voicing", HandleVoicing).Methods("POST")
	router.HandleFunc("/quiz/check", HandleQuizCheck).Methods("POST")
	return router
}

func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"dur", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func scaleInfo(key string, sc scale.Scale) model.ScaleInfo {
	return model.ScaleInfo{
		Key:       key,
		Name:      sc.Name,
		Intervals: sc.Intervals,
		ModeNames: sc.ModeNames,
	}
}

func chordInfo(key string, ch chord.Chord) model.ChordInfo {
	return model.ChordInfo{
		Key:         key,
		Symbol:      ch.Symbol,
		DisplayName: ch.DisplayName,
		Category:    ch.Category,
		Intervals:   ch.Intervals,
		Inversions:  len(ch.AvailableInversions()),
	}
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ScaleInfo, 0)
	for _, key := range scale.Names() {
		sc, _ := scale.Get(key)
		res = append(res, scaleInfo(key, sc))
	}
	writeJSON(w, res)
}

// HandleScale shows one scale; with ?root=C4 the degrees are spelled from
// that root. An unknown name is a normal miss: empty body, not an error.
func HandleScale(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	sc, ok := scale.Get(name)
	if !ok {
		writeJSON(w, model.ScaleInfo{})
		return
	}
	info := scaleInfo(name, sc)

	if rootText := r.URL.Query().Get("root"); rootText != "" {
		root, err := pitch.Parse(rootText)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		notes, err := sc.NotesForRoot(root)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		for _, n := range notes {
			info.Notes = append(info.Notes, n.String())
		}
	}
	writeJSON(w, info)
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ChordInfo, 0)
	for _, key := range chord.Names() {
		ch, _ := chord.Get(key)
		res = append(res, chordInfo(key, ch))
	}
	writeJSON(w, res)
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	ch, ok := chord.Get(name)
	if !ok {
		writeJSON(w, model.ChordInfo{})
		return
	}
	writeJSON(w, chordInfo(name, ch))
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	semitones, err := strconv.Atoi(mux.Vars(r)["semitones"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("semitones must be an integer"))
		return
	}
	iv := pitch.Interval(semitones)
	writeJSON(w, model.IntervalInfo{
		Semitones: semitones,
		Label:     iv.Label(),
		Name:      iv.Name(),
		Quality:   string(iv.Quality()),
		Consonant: iv.IsConsonant(),
		Inversion: iv.Inverted().Semitones(),
	})
}

func geometryFrom(body model.GeometryBody) (instrument.Geometry, error) {
	frets := body.Frets
	if frets <= 0 {
		frets = constants.GetMaxFrets()
	}

	if body.TuningName != "" {
		tuning, ok := instrument.Tuning(body.TuningName)
		if !ok {
			return instrument.Geometry{}, fmt.Errorf("unknown tuning %q", body.TuningName)
		}
		return instrument.Fretted(tuning, frets), nil
	}

	if len(body.Tuning) > 0 {
		tuning := make([]pitch.Note, 0, len(body.Tuning))
		for _, text := range body.Tuning {
			n, err := pitch.Parse(text)
			if err != nil {
				return instrument.Geometry{}, err
			}
			tuning = append(tuning, n)
		}
		return instrument.Fretted(tuning, frets), nil
	}

	if body.KeyStart != "" {
		start, err := pitch.Parse(body.KeyStart)
		if err != nil {
			return instrument.Geometry{}, err
		}
		return instrument.Keyed(start, body.KeyCount), nil
	}

	return instrument.Geometry{}, fmt.Errorf("instrument geometry required")
}

func HandleHighlight(w http.ResponseWriter, r *http.Request) {
	var req model.HighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	root, err := pitch.Parse(req.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	geo, err := geometryFrom(req.Instrument)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	notes := instrument.Highlight(instrument.Config{
		Root:      root,
		Octaves:   req.Octaves,
		Intervals: req.Intervals,
		ViewMode:  model.ViewMode(req.ViewMode),
		Scale:     req.Scale,
		Chord:     req.Chord,
		Inversion: req.Inversion,
		Geometry:  geo,
	})
	writeJSON(w, model.HighlightResponse{Notes: notes})
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	var req model.VoicingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	root, err := pitch.Parse(req.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	geo, err := geometryFrom(req.Instrument)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !geo.IsFretted() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("voicing search needs a fretted instrument"))
		return
	}

	candidates := voicing.BuildChordVoicing(
		root, req.Octave, req.Chord, chord.Inversion(req.Inversion), geo.Tuning, geo.Frets)
	fingering := voicing.OptimalFingering(candidates)

	writeJSON(w, model.VoicingResponse{
		Candidates: candidates,
		Fingering:  fingering,
		Difficulty: voicing.AnalyzeDifficulty(fingering, voicing.DefaultThresholds),
		Tablature:  voicing.Tablature(fingering, len(geo.Tuning)),
		Diagram:    voicing.Diagram(fingering, len(geo.Tuning)),
	})
}

// HandleQuizCheck validates a learner's note selection against a scale or a
// chord. Answer ids are note strings ("C4"); comparison is by pitch class,
// so octave choice never fails a learner.
func HandleQuizCheck(w http.ResponseWriter, r *http.Request) {
	var req model.QuizCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	root, err := pitch.Parse(req.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	expected := make(map[int]bool)
	switch {
	case req.Scale != "":
		if sc, ok := scale.Get(req.Scale); ok {
			for _, iv := range sc.Intervals {
				expected[(root.PitchClass+iv)%12] = true
			}
		}
	case req.Chord != "":
		if ch, ok := chord.Get(req.Chord); ok {
			for _, iv := range ch.Intervals {
				expected[(root.PitchClass+iv)%12] = true
			}
		}
	}

	answered := make(map[int]bool)
	for _, id := range req.Answer.Normalize() {
		n, err := pitch.Parse(id)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		answered[n.PitchClass] = true
	}

	var res model.QuizCheckResponse
	for pc := 0; pc < 12; pc++ {
		name := pitch.PitchClassName(pc, root.PreferFlats)
		if expected[pc] && !answered[pc] {
			res.Missing = append(res.Missing, name)
		}
		if answered[pc] && !expected[pc] {
			res.Extra = append(res.Extra, name)
		}
	}
	res.Correct = len(expected) > 0 && len(res.Missing) == 0 && len(res.Extra) == 0
	writeJSON(w, res)
}
