package middleware

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/api/metrics"
	"github.com/qalab/employee-directory/internal/core/domain"
)

// Request controls read by FaultInjection. Headers win over query parameters.
const (
	HeaderDelay    = "x-qa-delay"
	HeaderFail     = "x-qa-fail"
	HeaderFailRate = "x-qa-fail-rate"

	QueryDelay    = "__delay"
	QueryFail     = "__fail"
	QueryFailRate = "__fail_rate"
)

const maxDelayMs = math.MaxInt64 / int64(time.Millisecond)

// FaultConfig configures FaultInjection.
type FaultConfig struct {
	// Prefix limits injection to request paths under it.
	Prefix string
	// Random returns a value in [0,1). Defaults to math/rand.Float64.
	Random func() float64
	Logger zerolog.Logger
}

// Fault is the decision taken for a single request.
type Fault struct {
	Delay    time.Duration
	Forced   bool
	FailRate float64
}

// FaultInjection delays and fails API requests on demand. Each request is
// decided from its own headers and query string only.
func FaultInjection(cfg FaultConfig) echo.MiddlewareFunc {
	if cfg.Prefix == "" {
		cfg.Prefix = "/api"
	}
	if cfg.Random == nil {
		cfg.Random = rand.Float64
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !underPrefix(req.URL.Path, cfg.Prefix) {
				return next(c)
			}

			f := ParseFault(c)
			fail := f.Forced || (f.FailRate > 0 && cfg.Random() < f.FailRate)

			if f.Delay > 0 {
				metrics.FaultsInjectedTotal.WithLabelValues("delay").Inc()
				metrics.FaultDelaySeconds.Observe(f.Delay.Seconds())
				cfg.Logger.Debug().Dur("delay", f.Delay).Str("path", req.URL.Path).Msg("injecting delay")

				timer := time.NewTimer(f.Delay)
				select {
				case <-timer.C:
				case <-req.Context().Done():
					timer.Stop()
					return req.Context().Err()
				}
			}

			if fail {
				kind := "random_failure"
				if f.Forced {
					kind = "forced_failure"
				}
				metrics.FaultsInjectedTotal.WithLabelValues(kind).Inc()
				cfg.Logger.Info().Str("kind", kind).Str("path", req.URL.Path).Msg("injecting failure")
				return domain.ErrSimulatedFailure
			}
			return next(c)
		}
	}
}

// ParseFault reads the fault controls of a request.
func ParseFault(c echo.Context) Fault {
	delayMs := leadingInt(control(c, HeaderDelay, QueryDelay))
	delayMs = min(max(delayMs, 0), maxDelayMs)

	flag := strings.ToLower(control(c, HeaderFail, QueryFail))

	rate := leadingFloat(control(c, HeaderFailRate, QueryFailRate))

	return Fault{
		Delay:    time.Duration(delayMs) * time.Millisecond,
		Forced:   flag == "1" || flag == "true",
		FailRate: min(max(rate, 0), 1),
	}
}

func control(c echo.Context, header, param string) string {
	if v := c.Request().Header.Get(header); v != "" {
		return v
	}
	return c.QueryParam(param)
}

// leadingInt parses the optional sign and digits at the start of s, so
// "250ms" is 250. Anything without leading digits is 0.
func leadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0
	}
	// Out of range saturates, which the caller clamps anyway.
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}

// leadingFloat parses the decimal number at the start of s, so "0.5x" is
// 0.5. Anything without a leading number is 0.
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '-' || s[exp] == '+') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
