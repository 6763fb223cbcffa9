package importer

// Importer parses and validates documents with a fixed configuration.
// The zero value is not usable; construct with New.
type Importer struct {
	maxExcerptLength int
	wordsPerMinute   int
	classifier       Classifier
}

// Option customises an Importer.
type Option func(*Importer)

// WithMaxExcerptLength sets the excerpt cap. Non-positive values keep the default.
func WithMaxExcerptLength(n int) Option {
	return func(im *Importer) {
		if n > 0 {
			im.maxExcerptLength = n
		}
	}
}

// WithWordsPerMinute sets the reading speed. Non-positive values keep the default.
func WithWordsPerMinute(n int) Option {
	return func(im *Importer) {
		if n > 0 {
			im.wordsPerMinute = n
		}
	}
}

// WithVocabulary replaces the classifier keyword tables.
func WithVocabulary(v Vocabulary) Option {
	return func(im *Importer) {
		im.classifier = NewClassifier(v)
	}
}

// New builds an Importer with defaults overridden by opts.
func New(opts ...Option) *Importer {
	im := &Importer{
		maxExcerptLength: DefaultMaxExcerptLength,
		wordsPerMinute:   DefaultWordsPerMinute,
		classifier:       NewClassifier(DefaultVocabulary()),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// MaxExcerptLength reports the configured excerpt cap.
func (im *Importer) MaxExcerptLength() int { return im.maxExcerptLength }

// Parse extracts a ParsedDocument from raw markdown. Body is raw unchanged.
func (im *Importer) Parse(raw string) ParsedDocument {
	title := ExtractTitle(raw)
	return ParsedDocument{
		Title:          title,
		Body:           raw,
		Excerpt:        GenerateExcerpt(raw, im.maxExcerptLength),
		VideoIDs:       ExtractVideoIDs(raw),
		Classification: im.classifier.Classify(title, StripMarkup(raw), raw),
		ReadMinutes:    EstimateReadMinutes(raw, im.wordsPerMinute),
	}
}

// Scores exposes the classifier scores for raw, for diagnostics.
func (im *Importer) Scores(raw string) Scores {
	return im.classifier.Score(ExtractTitle(raw), StripMarkup(raw), raw)
}

// Validate runs the advisory pre-flight checks.
func (im *Importer) Validate(raw string) Validation {
	return ValidateContent(raw)
}

var defaultImporter = New()

// Parse runs the default Importer.
func Parse(raw string) ParsedDocument { return defaultImporter.Parse(raw) }

// Validate runs the default Importer's checks.
func Validate(raw string) Validation { return defaultImporter.Validate(raw) }
