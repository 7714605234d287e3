package middleware

import "net/http"

// statusRecorder remembers the status and body size of a response. Recovery,
// OpenTelemetry and Logging share one recorder per request.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

// recordStatus wraps w, or returns w itself when an outer middleware has
// already wrapped it.
func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader forwards the first status and drops later ones.
func (r *statusRecorder) WriteHeader(code int) {
	if r.status != 0 {
		return
	}
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Status returns the status sent, or 200 if the handler sent nothing.
func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *statusRecorder) headerSent() bool { return r.status != 0 }

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
