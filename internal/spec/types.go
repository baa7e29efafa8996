package spec

// Config is the on-disk quiz configuration.
type Config struct {
	Version   int              `yaml:"version"`
	Source    SourceConfig     `yaml:"source"`
	Templates []TemplateConfig `yaml:"templates"`
	Options   OptionsConfig    `yaml:"options"`
	Output    OutputConfig     `yaml:"output"`
}

// SourceConfig names where the table is read from. Exactly one of Path and
// Postgres is set.
type SourceConfig struct {
	Path     string          `yaml:"path,omitempty"`
	Postgres *PostgresConfig `yaml:"postgres,omitempty"`
}

type PostgresConfig struct {
	DSNEnv   string `yaml:"dsn_env"`
	Table    string `yaml:"table"`
	MaxConns int32  `yaml:"max_conns,omitempty"`
}

type TemplateConfig struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type OptionsConfig struct {
	MultiChoice        *bool  `yaml:"multi_choice,omitempty"`
	NumQuestions       int    `yaml:"num_questions,omitempty"`
	MultiChoiceOptions int    `yaml:"multi_choice_options,omitempty"`
	ScorePerQuestion   int    `yaml:"score_per_question,omitempty"`
	Separator          string `yaml:"separator,omitempty"`
	FirstQuestionNum   int    `yaml:"first_question_num,omitempty"`
	MaxAttempts        int    `yaml:"max_attempts,omitempty"`
	Seed               int64  `yaml:"seed,omitempty"`
}

// IsMultiChoice reports the effective question kind; unset means multiple choice.
func (o OptionsConfig) IsMultiChoice() bool {
	return o.MultiChoice == nil || *o.MultiChoice
}

type OutputConfig struct {
	Dir string `yaml:"dir,omitempty"`
}
