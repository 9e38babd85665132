package deps

import (
	"time"

	"github.com/bhrigu123/readster/internal/badge"
	"github.com/bhrigu123/readster/internal/httpserver/mw"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/repo"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	Repo          *repo.Repository   // reading-list operations
	Badge         *badge.Updater     // live active-item count
	ImportTrigger chan struct{}      // channel to trigger a manual import pass (nil if import disabled)
	WriteLimit    mw.RateLimitConfig // rate limit applied to mutating endpoints
}
