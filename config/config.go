package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging         LoggingConfig   `yaml:"logging"`
	Mongo           MongoConfig     `yaml:"mongo"`
	Revision        RevisionConfig  `yaml:"revision"`
	Editorial       EditorialConfig `yaml:"editorial"`
	Feeds           []FeedSource    `yaml:"feeds"`
	FeedFetchLimit  int             `yaml:"feed_fetch_limit"`
	GeminiModel     string          `yaml:"gemini_model"`
	GeminiApiKey    string          `yaml:"-"`
	EventBusEnabled bool            `yaml:"eventbus_enabled"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RevisionConfig overrides the thresholds driving the revision heuristics.
// Zero values keep the defaults from the editorial package, so a config.yaml
// without this section keeps stock behavior.
type RevisionConfig struct {
	MinBodyLength      int `yaml:"min_body_length"`
	IntroMinChars      int `yaml:"intro_min_chars"`
	IntroMaxChars      int `yaml:"intro_max_chars"`
	SplitWordThreshold int `yaml:"split_word_threshold"`
}

// EditorialConfig overrides the built-in lexicons from config.yaml.
// Empty lists keep the defaults; link targets replace the defaults entirely
// when present.
type EditorialConfig struct {
	CommercialWords   []string     `yaml:"commercial_words"`
	NavigationalWords []string     `yaml:"navigational_words"`
	DomainTerms       []string     `yaml:"domain_terms"`
	LinkTargets       []LinkTarget `yaml:"link_targets"`
}

// LinkTarget maps a body keyword to an internal landing page.
type LinkTarget struct {
	Keyword string `yaml:"keyword"`
	Anchor  string `yaml:"anchor"`
	URL     string `yaml:"url"`
}

// FeedSource is a single external news source ingested as draft articles.
type FeedSource struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	RSSURL string `yaml:"rss_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
