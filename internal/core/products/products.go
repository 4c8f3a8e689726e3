// Package products provides keyword based product detection over message text
// Matching pipeline
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Width fold fullwidth to ASCII
// then plain substring search against a curated keyword list
package products

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Classifier maps message text to the product categories it mentions
type Classifier interface {
	// Classify returns matched product names in the classifier's stable order
	Classify(text string) []string

	// Products returns all known product names in stable order
	Products() []string
}

// Entry pairs a product name with the keywords that identify it
type Entry struct {
	Product  string
	Keywords []string
}

// Defaults returns the curated product catalog
// slice order is the tie-break order for ranked reports, so it is stable
func Defaults() []Entry {
	return []Entry{
		{"Paracetamol", []string{"paracetamol", "panadol", "acetaminophen"}},
		{"Amoxicillin", []string{"amoxicillin", "amoxil", "amoxycillin"}},
		{"Vitamin C", []string{"vitamin c", "ascorbic acid"}},
		{"Antibiotics", []string{"antibiotic", "antibiotics", "amoxicillin", "azithromycin"}},
		{"Pain Relief", []string{"pain", "relief", "analgesic"}},
		{"Cough Syrup", []string{"cough", "syrup", "expectorant"}},
		{"Antiseptic", []string{"antiseptic", "disinfectant", "dettol"}},
		{"Skin Cream", []string{"cream", "ointment", "lotion", "moisturizer"}},
		{"Supplements", []string{"supplement", "vitamin", "mineral"}},
		{"Medical Equipment", []string{"mask", "gloves", "thermometer"}},
	}
}

// KeywordClassifier implements Classifier with folded substring matching
type KeywordClassifier struct {
	entries []Entry
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(), // unicode case folding
			width.Fold,   // map fullwidth forms to ASCII
		)
	},
}

// New constructs a classifier over the default catalog
func New() *KeywordClassifier { return NewWith(Defaults()) }

// NewWith constructs a classifier over a caller supplied catalog
// keywords are folded once up front so Classify only folds the message
func NewWith(entries []Entry) *KeywordClassifier {
	folded := make([]Entry, len(entries))
	for i, e := range entries {
		kws := make([]string, len(e.Keywords))
		for j, k := range e.Keywords {
			kws[j] = fold(k)
		}
		folded[i] = Entry{Product: e.Product, Keywords: kws}
	}
	return &KeywordClassifier{entries: folded}
}

// Classify returns every product with at least one keyword present in text
// a product is reported at most once no matter how many keywords hit
func (c *KeywordClassifier) Classify(text string) []string {
	if text == "" {
		return nil
	}
	t := fold(text)

	var out []string
	for _, e := range c.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(t, kw) {
				out = append(out, e.Product)
				break
			}
		}
	}
	return out
}

// Products returns the catalog's product names in stable order
func (c *KeywordClassifier) Products() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Product
	}
	return out
}

func fold(s string) string {
	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return ns
}
