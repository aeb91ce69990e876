package initializr

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// BootVersion is one selectable Spring Boot release. ID is the code the
// generator expects in the "bootVersion" form field; Name is the human
// label shown to the user. The two must never be swapped.
type BootVersion struct {
	ID   string
	Name string
}

// Dependency is one selectable starter dependency, flattened out of its
// metadata group. Group carries the category label for display.
type Dependency struct {
	ID    string
	Name  string
	Group string
}

// Metadata is the immutable snapshot of the Initializr service
// capabilities, fetched once at startup.
type Metadata struct {
	ProjectTypes []string

	NameDefault        string
	GroupIDDefault     string
	ArtifactIDDefault  string
	DescriptionDefault string

	JavaVersions       []string
	JavaVersionDefault string

	BootVersions       []BootVersion
	BootVersionDefault string

	Dependencies []Dependency
}

// DependencyIDs returns the flattened dependency ids in presentation order.
func (m *Metadata) DependencyIDs() []string {
	ids := make([]string, len(m.Dependencies))
	for i, d := range m.Dependencies {
		ids[i] = d.ID
	}
	return ids
}

// BootVersionName resolves a boot version id to its human label.
// Unknown ids are returned unchanged.
func (m *Metadata) BootVersionName(id string) string {
	for _, v := range m.BootVersions {
		if v.ID == id {
			return v.Name
		}
	}
	return id
}

// DependencyName resolves a dependency id back to its display name.
// Unknown ids are returned unchanged.
func (m *Metadata) DependencyName(id string) string {
	for _, d := range m.Dependencies {
		if d.ID == id {
			return d.Name
		}
	}
	return id
}

// --- wire format ---

// metadataResponse mirrors the service's JSON document. Only the fields
// the wizard needs are decoded.
type metadataResponse struct {
	Links map[string]json.RawMessage `json:"_links"`

	Name        defaultedText `json:"name"`
	GroupID     defaultedText `json:"groupId"`
	ArtifactID  defaultedText `json:"artifactId"`
	Description defaultedText `json:"description"`

	JavaVersion valueList `json:"javaVersion"`
	BootVersion valueList `json:"bootVersion"`

	Dependencies struct {
		Values []struct {
			Name   string `json:"name"`
			Values []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"values"`
		} `json:"values"`
	} `json:"dependencies"`
}

type defaultedText struct {
	Default string `json:"default"`
}

type valueList struct {
	Default string `json:"default"`
	Values  []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"values"`
}

// parseMetadata decodes the service JSON document into a Metadata snapshot.
func parseMetadata(r io.Reader) (*Metadata, error) {
	var resp metadataResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	m := &Metadata{
		NameDefault:        resp.Name.Default,
		GroupIDDefault:     resp.GroupID.Default,
		ArtifactIDDefault:  resp.ArtifactID.Default,
		DescriptionDefault: resp.Description.Default,
		JavaVersionDefault: resp.JavaVersion.Default,
		BootVersionDefault: resp.BootVersion.Default,
	}

	// Project types come from the _links keys. The "dependencies" link
	// is a metadata cross-reference, not a project type.
	for key := range resp.Links {
		if key == "dependencies" {
			continue
		}
		m.ProjectTypes = append(m.ProjectTypes, key)
	}
	sort.Strings(m.ProjectTypes)

	for _, v := range resp.JavaVersion.Values {
		m.JavaVersions = append(m.JavaVersions, v.Name)
	}

	for _, v := range resp.BootVersion.Values {
		m.BootVersions = append(m.BootVersions, BootVersion{ID: v.ID, Name: v.Name})
	}

	for _, group := range resp.Dependencies.Values {
		for _, dep := range group.Values {
			m.Dependencies = append(m.Dependencies, Dependency{
				ID:    dep.ID,
				Name:  dep.Name,
				Group: group.Name,
			})
		}
	}

	return m, nil
}
