package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/digital-land/harmonise-cli/internal/adapters/driven/csvio"
	schemaloader "github.com/digital-land/harmonise-cli/internal/adapters/driven/schema"
	"github.com/digital-land/harmonise-cli/internal/adapters/driven/storage/sqlite"
	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
	"github.com/digital-land/harmonise-cli/internal/core/services"
	"github.com/digital-land/harmonise-cli/internal/logger"
	"github.com/digital-land/harmonise-cli/internal/normalisers"
	"github.com/digital-land/harmonise-cli/internal/normalisers/geometry"
	"github.com/digital-land/harmonise-cli/internal/normalisers/organisation"
)

// runOptions collects everything one harmonisation needs. Organisation,
// patch and history paths are optional.
type runOptions struct {
	input            string
	output           string
	schemaPath       string
	logPath          string
	organisationPath string
	patchPath        string
	historyPath      string
	history          bool
}

// harmonise performs one complete run: load the schema and reference
// tables, build the index and registry, stream every row through the
// pipeline, and record the run in history when enabled.
func harmonise(ctx context.Context, opts runOptions) (summary *domain.RunSummary, err error) {
	sch, err := schemaloader.Load(opts.schemaPath)
	if err != nil {
		return nil, err
	}

	index, err := buildOrganisationIndex(opts.organisationPath, opts.patchPath)
	if err != nil {
		return nil, err
	}
	registry := normalisers.NewRegistry(sch, index)

	reader, err := csvio.OpenRowReader(opts.input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	writer, err := csvio.CreateRowWriter(opts.output, sch.FieldNames())
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
	}()

	issueLog, err := csvio.CreateIssueWriter(opts.logPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := issueLog.Close(); err == nil {
			err = closeErr
		}
	}()

	runID := uuid.New().String()
	issues := driven.IssueWriter(issueLog)

	var store *sqlite.Store
	if opts.history {
		store, err = sqlite.NewStore(opts.historyPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		err = store.CreateRun(ctx, domain.Run{
			ID:         runID,
			InputPath:  opts.input,
			OutputPath: opts.output,
			SchemaPath: opts.schemaPath,
			StartedAt:  time.Now().UTC(),
		})
		if err != nil {
			return nil, err
		}
		issues = services.NewMultiIssueWriter(issueLog, store.IssueWriter(runID))
	}

	service := services.NewHarmoniseService(runID, sch, registry, geometry.New(), reader, writer, issues)
	summary, err = service.Run(ctx)
	if err != nil {
		return nil, err
	}

	if store != nil {
		if err := store.FinishRun(ctx, runID, summary.Rows, summary.Issues, summary.Duration); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// buildOrganisationIndex loads the reference and patch tables. Either path
// may be empty; resolution then has fewer (or no) variants to hit, which
// simply surfaces as opendatacommunities-uri issues.
func buildOrganisationIndex(organisationPath, patchPath string) (*organisation.Index, error) {
	var orgs []domain.Organisation
	var patches []domain.OrganisationPatch

	if organisationPath != "" {
		var err error
		orgs, err = csvio.LoadOrganisations(organisationPath)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("no organisation table: OrganisationURI values will not resolve")
	}

	if patchPath != "" {
		var err error
		patches, err = csvio.LoadPatches(patchPath)
		if err != nil {
			return nil, err
		}
	}

	index := organisation.NewIndex(orgs, patches)
	logger.Debug("organisation index: %d variants", index.Len())
	return index, nil
}

// printSummary renders a run summary on the command's stdout.
func printSummary(printf func(format string, args ...any), summary *domain.RunSummary) {
	printf("Processed %d rows, %d issues in %s.\n",
		summary.Rows, summary.Issues, summary.Duration.Round(time.Millisecond))

	if summary.Issues == 0 {
		return
	}

	datatypes := make([]string, 0, len(summary.IssuesByDatatype))
	for datatype := range summary.IssuesByDatatype {
		datatypes = append(datatypes, datatype)
	}
	sort.Strings(datatypes)

	for _, datatype := range datatypes {
		printf("  %-24s %d\n", datatype, summary.IssuesByDatatype[datatype])
	}
}

// validateRunArgs checks the positional input/output pair.
func validateRunArgs(args []string) error {
	if len(args) != 2 {
		return errors.New("expected arguments: <input.csv> <output.csv>")
	}
	if args[0] == args[1] {
		return fmt.Errorf("input and output are the same file: %s", args[0])
	}
	return nil
}
