package config

import (
	"fmt"
	"strings"

	"tabquiz/internal/placeholder"
	"tabquiz/internal/spec"
)

func validateTemplates(templates []spec.TemplateConfig, add issueAdder) {
	if len(templates) == 0 {
		add("templates", "at least one template is required")
		return
	}
	for i, tmpl := range templates {
		fieldPrefix := fmt.Sprintf("templates[%d]", i)
		if strings.TrimSpace(tmpl.Question) == "" {
			add(fieldPrefix+".question", "is required")
		} else if fields, err := placeholder.Extract(tmpl.Question); err != nil {
			add(fieldPrefix+".question", err.Error())
		} else if len(fields) == 0 {
			add(fieldPrefix+".question", "must contain at least one {placeholder}")
		}
		if tmpl.Answer == "" {
			add(fieldPrefix+".answer", "is required")
		}
	}
}
