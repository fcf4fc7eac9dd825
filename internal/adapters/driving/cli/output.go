package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgopen/internal/core/domain"
	"github.com/custodia-labs/orgopen/internal/logger"
)

type successOutput struct {
	Status int                `json:"status"`
	Result *domain.Resolution `json:"result"`
}

type failureOutput struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func writeResult(cmd *cobra.Command, res *domain.Resolution) error {
	return writeJSON(cmd, successOutput{Status: 0, Result: res})
}

// fail logs err and, in JSON mode, prints it as a failure object.
// err is returned unchanged so the process exits non-zero.
func fail(cmd *cobra.Command, err error) error {
	logger.Warn("%v", err)
	if jsonOutput {
		if werr := writeJSON(cmd, failureOutput{Status: 1, Name: errorName(err), Message: err.Error()}); werr != nil {
			return werr
		}
	}
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorName maps err onto a stable name for JSON output.
func errorName(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, domain.ErrUnsupportedType):
		return "UnsupportedType"
	case errors.Is(err, domain.ErrNotFound):
		return "NotFound"
	case errors.Is(err, domain.ErrAuthRequired):
		return "AuthRequired"
	case errors.Is(err, domain.ErrOrgQuery):
		return "OrgQueryFailed"
	case errors.Is(err, domain.ErrBrowser):
		return "BrowserFailed"
	default:
		return "Error"
	}
}
