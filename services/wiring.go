package services

import (
	"emlak-press/config"
	"emlak-press/editorial"
)

// NewEditorialFromConfig builds the auditor and reviser with the config.yaml
// overrides applied on top of the built-in lexicon and thresholds.
func NewEditorialFromConfig(cfg config.AppConfig) (*editorial.Auditor, *editorial.Reviser) {
	targets := make([]editorial.LinkTarget, 0, len(cfg.Editorial.LinkTargets))
	for _, t := range cfg.Editorial.LinkTargets {
		targets = append(targets, editorial.LinkTarget{Keyword: t.Keyword, Anchor: t.Anchor, URL: t.URL})
	}

	lex := editorial.DefaultLexicon().Merge(
		cfg.Editorial.CommercialWords,
		cfg.Editorial.NavigationalWords,
		cfg.Editorial.DomainTerms,
		targets,
	)

	rc := editorial.DefaultReviseConfig()
	if cfg.Revision.IntroMinChars > 0 {
		rc.IntroMinChars = cfg.Revision.IntroMinChars
	}
	if cfg.Revision.IntroMaxChars > 0 {
		rc.IntroMaxChars = cfg.Revision.IntroMaxChars
	}
	if cfg.Revision.SplitWordThreshold > 0 {
		rc.SplitWordThreshold = cfg.Revision.SplitWordThreshold
	}

	return editorial.NewAuditor(lex), editorial.NewReviser(lex, rc)
}
