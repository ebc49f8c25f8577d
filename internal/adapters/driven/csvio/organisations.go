package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

// LoadOrganisations reads the organisation reference table. Unreadable
// tables are structural failures; absent cells load as "".
func LoadOrganisations(path string) ([]domain.Organisation, error) {
	var orgs []domain.Organisation
	err := readTable(path, func(row map[string]string) {
		orgs = append(orgs, domain.Organisation{
			Organisation:         row["organisation"],
			OpenDataCommunities:  row["opendatacommunities"],
			StatisticalGeography: row["statistical-geography"],
		})
	})
	if err != nil {
		return nil, fmt.Errorf("loading organisations from %s: %w", path, err)
	}
	return orgs, nil
}

// LoadPatches reads the manually curated organisation patch table.
func LoadPatches(path string) ([]domain.OrganisationPatch, error) {
	var patches []domain.OrganisationPatch
	err := readTable(path, func(row map[string]string) {
		patches = append(patches, domain.OrganisationPatch{
			Value:        row["value"],
			Organisation: row["organisation"],
		})
	})
	if err != nil {
		return nil, fmt.Errorf("loading patches from %s: %w", path, err)
	}
	return patches, nil
}

// readTable streams a header-keyed CSV file through fn.
func readTable(path string, fn func(row map[string]string)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		fn(row)
	}
}
