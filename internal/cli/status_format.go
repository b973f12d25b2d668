package cli

import (
	"errors"
	"fmt"

	"github.com/logstacklabs/eon/internal/export"
	"github.com/logstacklabs/eon/internal/tui/components"
	"github.com/logstacklabs/eon/internal/tui/styles"
)

func resultState(result export.Result) components.ResultState {
	if result.OK() {
		return components.ResultOK
	}
	return components.ResultFailed
}

func formatResult(styleSet styles.Styles, result export.Result) string {
	icon := components.ResultIcon(resultState(result))
	name := result.Artifact.Filename
	if result.OK() {
		return styleSet.Success.Render(fmt.Sprintf("   %s %s", icon, name)) +
			styleSet.Text.Render(fmt.Sprintf(" - %s (%d bytes)", result.Artifact.Description, result.Size))
	}
	return styleSet.Error.Render(fmt.Sprintf("   %s %s - Failed: %s", icon, name, failureReason(result.Err)))
}

// failureReason drops the artifact prefix a WriteError adds.
func failureReason(err error) string {
	if err == nil {
		return "unknown error"
	}
	var writeErr *export.WriteError
	if errors.As(err, &writeErr) && writeErr.Err != nil {
		return writeErr.Err.Error()
	}
	return err.Error()
}
