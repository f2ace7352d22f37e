// Package slug turns arbitrary text into lowercase, hyphen separated ASCII
// tokens that are safe to use as a URL path segment.
//
// # Usage
//
//	import "github.com/dmitrymomot/bili/pkg/slug"
//
//	slug.Make("Héllo World!!")       // "hello-world"
//	slug.Make("Fish &amp; Chips")    // "fish-chips"
//	slug.Make("Crème brûlée", slug.MaxLength(5)) // "creme"
//
// # Pipeline
//
// Make decodes entity references, folds the text to ASCII with package
// translit, lowercases and trims it, turns spaces into hyphens, removes every
// character that is not a word character, whitespace or hyphen and finally
// collapses hyphen runs. The order matters: removing punctuation before the
// collapse step is what turns "a - b" into "a-b".
//
// The result may be empty for input that consists of punctuation only.
//
// # Configuration Options
//
//   - CustomReplace: apply string replacements before anything else
//   - MaxLength: truncate the slug
//   - WithSuffix: add a random alphanumeric suffix to reduce collisions
//
// # Thread Safety
//
// All functions in this package are thread-safe. The random suffix generation
// uses crypto/rand.
package slug
