package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_console/internal/adapters/backend"
	"hotel_console/internal/adapters/notify"
	redisad "hotel_console/internal/adapters/redis"
	"hotel_console/internal/app"
	"hotel_console/internal/domain"
	"hotel_console/internal/shared"
	"hotel_console/internal/storage/file"
	mysqlkv "hotel_console/internal/storage/mysql"
)

// loginHint is the terminal navigator: the only place it can send the
// operator is the login command.
type loginHint struct{ w io.Writer }

func (h loginHint) Navigate(path string) {
	if path == app.LoginPath {
		fmt.Fprintln(h.w, "Run `console login --email <email>` to sign in.")
	}
}

// openKV builds the session store named by SESSION_STORE. The returned
// closer releases its connection.
func openKV(ctx context.Context, cfg shared.Config) (domain.KV, func(), error) {
	switch cfg.SessionStore {
	case "", "file":
		kv, err := file.New(cfg.ConsoleHome)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil
	case "redis":
		kv := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		return kv, func() { _ = kv.Close() }, nil
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		kv := mysqlkv.New(db)
		if err := kv.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("create console_state: %w", err)
		}
		return kv, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORE %q (want file, redis or mysql)", cfg.SessionStore)
	}
}

// openConsole wires a console around the configured backend and restores
// the persisted session.
func (rt *runtime) openConsole(ctx context.Context, n domain.Notifier) (*app.Console, func(), error) {
	kv, closeKV, err := openKV(ctx, rt.cfg)
	if err != nil {
		return nil, nil, err
	}
	client, err := backend.New(rt.cfg.BackendBaseURL, rt.cfg.BackendTimeout, rt.cfg.BackendRPS)
	if err != nil {
		closeKV()
		return nil, nil, err
	}
	if n == nil {
		n = notify.NewWriter(rt.env.Err)
	}
	c := app.NewConsole(client, kv, n, loginHint{rt.env.Err})
	client.UseToken(c.Session.Token)
	c.Session.Restore(ctx)

	log.Debug().
		Str("backend", rt.cfg.BackendBaseURL).
		Str("session_store", rt.cfg.SessionStore).
		Str("session", string(c.Session.State())).
		Msg("console ready")
	return c, closeKV, nil
}

// protected opens the console and refuses to continue unless logged in.
func (rt *runtime) protected(ctx context.Context) (*app.Console, func(), error) {
	c, done, err := rt.openConsole(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	if c.Guard(nil).Evaluate() != app.ViewRender {
		done()
		return nil, nil, errNotLoggedIn
	}
	return c, done, nil
}
