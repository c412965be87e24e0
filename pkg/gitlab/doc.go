// Package gitlab provides types, interfaces, and helpers for working with the
// GitLab REST API (v4).
//
// # Overview
//
// The gitlab package defines the domain types (Project, Issue, MergeRequest,
// Pipeline, Job, WikiPage, ...) and the interfaces for resource-oriented
// clients (ProjectsClient, IssuesClient, PipelinesClient, ...). A concrete
// implementation is provided by the gitlabclient package, which wires
// credentials, transport and authentication.
//
// Getting a client
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
//	  creds, err := gitlab.NewCredentials("https://gitlab.com/api/v4", token)
//	  if err != nil { log.Fatal(err) }
//
//	  cli, err := gitlabclient.New(&gitlab.Config{Credentials: creds})
//	  if err != nil { log.Fatal(err) }
//
//	  pipelines, err := cli.Pipelines().List(ctx, "group/app", &gitlab.ListPipelinesOptions{})
//	  if err != nil { log.Fatal(err) }
//	  _ = pipelines.Count
//	}
//
// # Identifiers
//
// Project and group identifiers accept numeric IDs and namespace paths
// ("group/subgroup/app") interchangeably. Each dynamic path segment is
// escaped with PathSegment, so a slash travels as %2F.
//
// # Lists
//
// Every list operation returns a ListResponse whose Count is the remote total
// from the X-Total header, not the page length. The exception is
// IssuesClient.List with an IID filter, which narrows the fetched page.
//
// # Errors
//
// Every failure is an *Error with a Kind. Use errors.Is against the kind
// sentinels (ErrNotFound, ErrUnauthorized, ...) or the Is* helpers.
// Responses that do not match their declared shape fail with KindValidation
// and carry one FieldViolation per offending field.
//
// # CI configuration
//
// CILintClient.Lint validates a .gitlab-ci.yml. With empty content it reads
// the file from the project's default branch first; ParseLintStatus folds the
// old string status and the newer boolean into one bool.
//
// # Interceptors
//
// Request and response interceptors add authentication, request ids,
// logging and metrics around each round trip. Requests are never retried.
package gitlab
