package devotion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/jpbalagtas/church-companion-api/pkg/config"
)

// Outcome reports which path produced a generated devotion, so callers
// and tests can tell model output apart from the bundled fallback.
type Outcome int

const (
	// OutcomeStructured means the completion parsed directly as JSON.
	OutcomeStructured Outcome = iota
	// OutcomeRecovered means the completion was not valid JSON but an
	// embedded {...} object was extracted and parsed.
	OutcomeRecovered
	// OutcomeFallback means the fixed mock devotion was used: no
	// credential, a transport fault, or an unparseable completion.
	OutcomeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStructured:
		return "structured"
	case OutcomeRecovered:
		return "recovered"
	default:
		return "fallback"
	}
}

// completionFunc abstracts the model call so tests can stand in for
// the network.
type completionFunc func(ctx context.Context, prompt string) (string, error)

// Generator produces devotion records. Generate is total: every
// failure mode degrades to the fallback devotion instead of erroring.
type Generator struct {
	complete completionFunc
	now      func() time.Time
}

const systemInstruction = "You are a Christian devotional writer who creates inspiring, practical daily devotions. Always respond with valid JSON format."

// NewGenerator builds a Generator backed by the Gemini API. An empty
// API key is a valid configuration: the generator then always serves
// the fallback devotion without making network calls.
func NewGenerator(cfg *config.Config) (*Generator, error) {
	g := &Generator{now: time.Now}
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, devotion generation will use fallback content")
		return g, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.GenAIModel
	g.complete = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model,
			genai.Text(prompt),
			&genai.GenerateContentConfig{
				Temperature:       genai.Ptr[float32](0.7),
				MaxOutputTokens:   1000,
				SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			},
		)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return g, nil
}

// generatedFields is the JSON shape the prompt asks the model for.
type generatedFields struct {
	DevotionTitle          string `json:"devotion_title"`
	WordText               string `json:"word_text"`
	DevotionContent        string `json:"devotion_content"`
	TagalogWordText        string `json:"tagalog_word_text"`
	TagalogDevotionContent string `json:"tagalog_devotion_content"`
}

func buildPrompt(verse string) string {
	return fmt.Sprintf(`Generate a daily devotion based on %s.

Please provide:
1. A devotion title (inspiring and relevant)
2. A key verse or phrase from %s (2-3 sentences max)
3. A devotion content (200-300 words) that explains the verse and applies it to daily life
4. A Tagalog translation of the key verse/phrase
5. A Tagalog translation of the devotion content

Format the response as JSON with these fields:
- devotion_title
- word_text (the key verse/phrase)
- devotion_content
- tagalog_word_text
- tagalog_devotion_content

Make it inspiring, practical, and relevant to modern life.`, verse, verse)
}

// Generate builds today's devotion for the given verse reference. It
// never fails: when no credential is configured, the model call
// errors, or the completion cannot be parsed, the fixed fallback
// devotion is returned with OutcomeFallback. At most one outbound
// call is made per invocation.
func (g *Generator) Generate(ctx context.Context, verseRef string) (*DevotionRecord, Outcome) {
	today := TodayKey(g.now())

	if g.complete == nil {
		return fallbackDevotion(verseRef, today), OutcomeFallback
	}

	raw, err := g.complete(ctx, buildPrompt(verseRef))
	if err != nil {
		log.Printf("devotion generation failed, using fallback: %v", err)
		return fallbackDevotion(verseRef, today), OutcomeFallback
	}

	var fields generatedFields
	if err := json.Unmarshal([]byte(raw), &fields); err == nil {
		return recordFromFields(fields, verseRef, today), OutcomeStructured
	}

	if obj := extractJSONObject(raw); obj != "" {
		if err := json.Unmarshal([]byte(obj), &fields); err == nil {
			return recordFromFields(fields, verseRef, today), OutcomeRecovered
		}
	}

	log.Printf("unparseable generation response, using fallback")
	return fallbackDevotion(verseRef, today), OutcomeFallback
}

func recordFromFields(f generatedFields, verseRef, today string) *DevotionRecord {
	return &DevotionRecord{
		PublishedDate:          today,
		WordVerse:              verseRef,
		WordText:               f.WordText,
		DevotionTitle:          f.DevotionTitle,
		DevotionContent:        f.DevotionContent,
		TagalogWordText:        &f.TagalogWordText,
		TagalogDevotionContent: &f.TagalogDevotionContent,
		AudioURL:               nil,
	}
}

// extractJSONObject returns the first balanced {...} substring, or ""
// when none exists.
func extractJSONObject(s string) string {
	start := -1
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}

const (
	fallbackTitle   = "God's Blessing and Grace"
	fallbackWord    = "May God be gracious to us and bless us and make his face shine on us— so that your ways may be known on earth, your salvation among all nations."
	fallbackContent = "Psalm 67 is a beautiful prayer for God's blessing and grace. The psalmist begins by asking for God's favor and blessing, not just for personal gain, but so that God's ways and salvation may be known throughout the earth. This reflects a heart that desires God's glory above all else. When we seek God's blessing, we should also pray that it would be used to bring others to know Him. The psalm reminds us that God's blessings are not meant to be hoarded but shared, so that all nations might praise Him. As we go through our day, let us remember that every blessing we receive is an opportunity to point others to God's love and grace."

	fallbackTagalogWord    = "Pagpalain nawa tayo ng Dios at pagpapalain niya tayo, at papangyarihin niya ang kaniyang mukha na lumiwanag sa atin; Upang ang iyong mga daan ay makilala sa lupa, ang iyong kaligtasan sa gitna ng lahat ng mga bansa."
	fallbackTagalogContent = "Ang Awit 67 ay isang magandang panalangin para sa pagpapala at biyaya ng Dios. Nagsisimula ang salmista sa pamamagitan ng paghingi ng pabor at pagpapala ng Dios, hindi para sa personal na pakinabang, kundi upang ang mga daan ng Dios at ang kaligtasan ay makilala sa buong lupa. Ito ay nagpapakita ng puso na nagnanais ng kaluwalhatian ng Dios higit sa lahat. Kapag hinihingi natin ang pagpapala ng Dios, dapat din nating ipanalangin na ito ay magamit upang dalhin ang iba sa pagkakilala sa Kanya. Ang awit ay nagpapaalala sa atin na ang mga pagpapala ng Dios ay hindi dapat ipunin kundi ibahagi, upang ang lahat ng mga bansa ay makapagpuri sa Kanya."
)

func fallbackDevotion(verseRef, today string) *DevotionRecord {
	tagalogWord := fallbackTagalogWord
	tagalogContent := fallbackTagalogContent
	return &DevotionRecord{
		PublishedDate:          today,
		WordVerse:              verseRef,
		WordText:               fallbackWord,
		DevotionTitle:          fallbackTitle,
		DevotionContent:        fallbackContent,
		TagalogWordText:        &tagalogWord,
		TagalogDevotionContent: &tagalogContent,
		AudioURL:               nil,
	}
}
