// Package gitlabclient is the entry point for constructing a GitLab REST API
// client that implements the gitlab.Client interface.
//
// It layers credentials, HTTP transport and bearer authentication on top of
// the resource interfaces and types defined in the gitlab package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
//	  "github.com/fivetwenty-io/gitlab-mcp/pkg/gitlabclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := gitlabclient.NewWithToken("https://gitlab.com/api/v4", "glpat-...")
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.CILint().Lint(ctx, "group/app", &gitlab.CILintOptions{})
//	  if err != nil { log.Fatal(err) }
//	  _ = result.Valid
//	}
//
// # Keyring
//
// NewFromKeyring reads the token stored by `gitlab-mcp token set` for the
// API host, so no token has to live in the environment.
package gitlabclient
