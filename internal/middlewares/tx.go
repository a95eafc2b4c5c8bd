package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-diary/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is rolled back when the handler panics or answers with a 5xx status
// and committed otherwise, so failed-login counters survive a 401.
// Hooks registered with OnTxDone run once the outcome is known, before the
// response is sent.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			hooks := &txHooks{}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					hooks.run(false)
					panic(rec)
				}
			}()

			rw := &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}

			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, txHooksKey{}, hooks)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.statusCode >= http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				hooks.run(false)
				rw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				hooks.run(false)
				// drop whatever the handler prepared, cookies included
				for k := range w.Header() {
					delete(w.Header(), k)
				}
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			hooks.run(true)
			rw.flush()
		})
	}
}

// bufferedWriter holds the response back until the transaction outcome is known.
type bufferedWriter struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	if len(bw.body) > 0 {
		bw.ResponseWriter.Write(bw.body)
	}
}

type txHooks struct {
	fns []func(committed bool)
}

func (h *txHooks) run(committed bool) {
	for _, fn := range h.fns {
		fn(committed)
	}
	h.fns = nil
}

type txHooksKey struct{}

// OnTxDone registers fn to run once the request transaction commits or rolls back.
// Outside a transaction fn runs immediately with committed set to true.
func OnTxDone(ctx context.Context, fn func(committed bool)) {
	hooks, ok := ctx.Value(txHooksKey{}).(*txHooks)
	if !ok {
		fn(true)
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

type txKey struct{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
