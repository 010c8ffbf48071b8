package version

import (
	"os/exec"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Commit string `json:"commit"`
}

var Version VersionResponse

func init() {
	Version.Commit = gitCommit()
}

func gitCommit() string {
	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
