package version

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
)

const unknownCommit = "unknown"

var Version = models.VersionResponse{Commit: commitFromBuildInfo(debug.ReadBuildInfo())}

// commitFromBuildInfo returns the VCS revision stamped by the go command,
// with a "-dirty" suffix for modified trees.
func commitFromBuildInfo(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return unknownCommit
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return unknownCommit
	}
	if modified {
		return revision + "-dirty"
	}
	return revision
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
