package refdata

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// LocalTemplatePrefix marks template ids that resolve to a local file rather
// than a backend custom form.
const LocalTemplatePrefix = "local:"

// localTemplateFile mirrors the YAML layout of a schedule-template file under
// the templates directory.
type localTemplateFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	Questions   []struct {
		Label    string `yaml:"label"`
		Type     string `yaml:"type"`
		Group    string `yaml:"group"`
		SubGroup string `yaml:"sub_group"`
		Required bool   `yaml:"required"`
		Hint     string `yaml:"hint"`
	} `yaml:"questions"`
}

// LoadLocalTemplates parses every *.yaml/*.yml file in dir into template
// details. A missing directory yields an empty list; a file with invalid
// YAML fails the whole load so a typo is never silently skipped.
//
// Local templates carry a "local:" id prefix so they can be listed alongside
// backend custom forms without colliding.
func LoadLocalTemplates(dir string) ([]domain.TemplateDetail, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmerrors.Wrapf(err, "reading templates directory %s", dir)
	}

	var templates []domain.TemplateDetail
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		detail, err := loadLocalTemplate(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		templates = append(templates, detail)
	}
	return templates, nil
}

// FindLocalTemplate resolves a template by its "local:<stem>" id or bare
// file stem.
func FindLocalTemplate(dir, id string) (*domain.TemplateDetail, error) {
	stem := strings.TrimPrefix(id, LocalTemplatePrefix)
	templates, err := LoadLocalTemplates(dir)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].ID == LocalTemplatePrefix+stem {
			return &templates[i], nil
		}
	}
	return nil, fmerrors.Wrapf(fmerrors.ErrTemplateNotFound, "local template %q", stem)
}

func loadLocalTemplate(path string) (domain.TemplateDetail, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the operator's own templates dir
	if err != nil {
		return domain.TemplateDetail{}, fmerrors.Wrapf(err, "reading template %s", path)
	}

	var file localTemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.TemplateDetail{}, fmerrors.Wrapf(fmerrors.ErrTemplateParse, "%s: %v", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	detail := domain.TemplateDetail{
		ID:          LocalTemplatePrefix + stem,
		Name:        file.Name,
		Description: file.Description,
		Kind:        normalizeKind(file.Kind),
	}
	if detail.Name == "" {
		detail.Name = stem
	}
	for _, q := range file.Questions {
		required := "false"
		if q.Required {
			required = "true"
		}
		detail.Content = append(detail.Content, domain.TemplateQuestion{
			Label:      q.Label,
			Type:       q.Type,
			GroupID:    q.Group,
			SubGroupID: q.SubGroup,
			Required:   required,
			Hint:       q.Hint,
		})
	}
	return detail, nil
}

// normalizeKind resolves a schedule-kind string case-insensitively.
// Unknown values clear the field so template apply leaves it untouched.
func normalizeKind(v string) constants.ScheduleKind {
	for _, kind := range constants.ScheduleKinds() {
		if strings.EqualFold(string(kind), v) {
			return kind
		}
	}
	return ""
}
