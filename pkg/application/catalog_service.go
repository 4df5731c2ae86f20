package application

import (
	"fmt"

	"github.com/felixgeelhaar/skillmap/pkg/domain"
	"github.com/felixgeelhaar/skillmap/pkg/domain/catalog"
	"github.com/felixgeelhaar/skillmap/pkg/domain/roadmap"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// catalogSchemaJSON validates the authored catalog document before it is
// decoded into domain types. Structural graph invariants (unknown ids,
// cycles, phase ordering) are checked separately by BuildGraph.
const catalogSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "slug", "name", "phase", "estimated_hours"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "slug": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "phase": {"enum": ["foundation", "core", "advanced", "specialization"]},
          "estimated_hours": {"type": "number", "exclusiveMinimum": 0},
          "is_optional": {"type": "boolean"},
          "sequence_order": {"type": "integer"}
        }
      }
    },
    "prerequisites": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill_id", "prerequisite_id"],
        "properties": {
          "skill_id": {"type": "string", "minLength": 1},
          "prerequisite_id": {"type": "string", "minLength": 1}
        }
      }
    },
    "roles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "required_skill_ids"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "required_skill_ids": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

var catalogSchemaLoader = gojsonschema.NewStringLoader(catalogSchemaJSON)

// CatalogService loads and validates the skill catalog. It is the read-only
// boundary between the authored content and the engine.
type CatalogService struct {
	repo domain.WorkspaceRepository
}

func NewCatalogService(repo domain.WorkspaceRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// LoadGraph builds the prerequisite DAG from the stored catalog. Every load
// re-runs full validation: a corrupt catalog never reaches generation.
func (s *CatalogService) LoadGraph() (*catalog.Graph, *catalog.Document, error) {
	doc, err := s.repo.LoadCatalog()
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, catalog.ErrEmptyCatalog
	}

	graph, err := catalog.BuildGraph(doc.Skills, doc.Prerequisites)
	if err != nil {
		return nil, nil, err
	}
	return graph, doc, nil
}

// ResolveRole looks up the role mapping. An unknown role is a caller input
// error, not a catalog incident.
func (s *CatalogService) ResolveRole(doc *catalog.Document, roleID string) (catalog.Role, error) {
	role, ok := doc.Role(roleID)
	if !ok {
		return catalog.Role{}, &roadmap.InvalidInputError{
			Field:  "target_role",
			Reason: fmt.Sprintf("role %q is not in the catalog", roleID),
		}
	}
	return role, nil
}

// ValidationReport summarizes a catalog audit.
type ValidationReport struct {
	Valid        bool     `json:"valid"`
	SkillCount   int      `json:"skill_count"`
	EdgeCount    int      `json:"edge_count"`
	RoleCount    int      `json:"role_count"`
	SchemaErrors []string `json:"schema_errors,omitempty"`
	GraphErrors  []string `json:"graph_errors,omitempty"`
}

// Validate audits the stored catalog: schema shape, graph invariants, and
// phase ordering across every edge. All findings are collected so operators
// see the full damage in one pass.
func (s *CatalogService) Validate() (*ValidationReport, error) {
	raw, err := s.repo.LoadCatalogRaw()
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, catalog.ErrEmptyCatalog
	}

	report := &ValidationReport{}

	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("catalog is not valid YAML: %w", err)
	}

	result, err := gojsonschema.Validate(catalogSchemaLoader, gojsonschema.NewGoLoader(decoded))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	for _, desc := range result.Errors() {
		report.SchemaErrors = append(report.SchemaErrors, desc.String())
	}

	doc, err := s.repo.LoadCatalog()
	if err != nil {
		return nil, err
	}
	report.SkillCount = len(doc.Skills)
	report.RoleCount = len(doc.Roles)

	graph, err := catalog.BuildGraph(doc.Skills, doc.Prerequisites)
	if err != nil {
		report.GraphErrors = append(report.GraphErrors, err.Error())
	} else {
		report.EdgeCount = graph.EdgeCount()
		report.GraphErrors = append(report.GraphErrors, phaseAudit(graph)...)
	}

	report.Valid = len(report.SchemaErrors) == 0 && len(report.GraphErrors) == 0
	return report, nil
}

// phaseAudit reports every edge whose prerequisite lives in a later phase
// than its dependent, across the whole catalog.
func phaseAudit(g *catalog.Graph) []string {
	var findings []string
	for _, id := range g.SkillIDs() {
		skill, _ := g.Skill(id)
		for _, pre := range g.Prerequisites(id) {
			preSkill, _ := g.Skill(pre)
			if preSkill.Phase.Order() > skill.Phase.Order() {
				err := &catalog.PhaseOrderError{
					SkillID:           skill.ID,
					SkillPhase:        skill.Phase,
					PrerequisiteID:    preSkill.ID,
					PrerequisitePhase: preSkill.Phase,
				}
				findings = append(findings, err.Error())
			}
		}
	}
	return findings
}
