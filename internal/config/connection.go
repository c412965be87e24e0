package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

var (
	ErrConnectionFailed   = errors.New("GitLab API authentication failed")
	ErrMissingPermissions = errors.New("token missing permissions")
)

// ConnectionTest is one probe run by CheckConnection.
type ConnectionTest struct {
	Name       string `json:"name"            yaml:"name"`
	Permission string `json:"permission"      yaml:"permission"`
	Passed     bool   `json:"passed"          yaml:"passed"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ConnectionReport is the outcome of CheckConnection.
type ConnectionReport struct {
	User  *gitlab.UserDetail `json:"user,omitempty" yaml:"user,omitempty"`
	Tests []ConnectionTest   `json:"tests"          yaml:"tests"`
}

// CheckConnection authenticates as the current user, then lists one project
// to confirm the token can read the API. The report is returned even when
// the check fails.
func CheckConnection(ctx context.Context, c gitlab.Client) (*ConnectionReport, error) {
	report := &ConnectionReport{}

	user, err := c.Users().Current(ctx)
	report.Tests = append(report.Tests, probe("GET /user", "read_user", err))

	if err != nil {
		return report, fmt.Errorf("%w: %s", ErrConnectionFailed, describe(err))
	}

	report.User = user

	_, err = c.Projects().Search(ctx, &gitlab.SearchProjectsOptions{PerPage: 1})
	report.Tests = append(report.Tests, probe("GET /projects?per_page=1", "read_api", err))

	var missing []string

	for _, test := range report.Tests {
		if !test.Passed && strings.HasPrefix(test.Error, string(gitlab.KindPermission)) {
			missing = append(missing, test.Permission)
		}
	}

	if len(missing) > 0 {
		return report, fmt.Errorf("%w: %s", ErrMissingPermissions, strings.Join(missing, ", "))
	}

	if err != nil {
		return report, fmt.Errorf("listing projects: %s", describe(err))
	}

	return report, nil
}

func probe(name, permission string, err error) ConnectionTest {
	test := ConnectionTest{Name: name, Permission: permission, Passed: err == nil}

	if err != nil {
		var apiErr *gitlab.Error
		if errors.As(err, &apiErr) {
			test.Error = string(apiErr.Kind) + ": " + describe(err)
		} else {
			test.Error = describe(err)
		}
	}

	return test
}

// describe turns a client error into advice for the operator.
func describe(err error) string {
	switch {
	case gitlab.IsUnauthorized(err):
		return "Invalid or expired token"
	case gitlab.IsForbidden(err):
		return "Token lacks required permissions"
	case gitlab.IsNotFound(err):
		return "GitLab API endpoint not found"
	case gitlab.IsRateLimited(err):
		return "Rate limit exceeded"
	case gitlab.IsNetwork(err):
		return "Cannot connect to GitLab API. Check network connectivity and API URL."
	default:
		return err.Error()
	}
}
