package circlegarden

import (
	"context"
	"log/slog"
)

// logPackStats logs a scene's packing statistics at debug level.
func logPackStats(s *Scene) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	st := s.stats
	rate := 0.0
	if st.Attempts > 0 {
		rate = float64(st.Circles) / float64(st.Attempts)
	}
	l.Debug("scene packed",
		"scene", s.Name(),
		"circles", st.Circles,
		"attempts", st.Attempts,
		"radii", st.Radii,
		"hit_rate", rate,
		"elapsed", st.Elapsed)
}
