package engine

import (
	"strings"
	"unicode"
)

// stopwords 是固定的英文停用词表：高频低信息量的功能词不进入词表。
// 训练与查询使用同一张表，保证同一文本在两侧分出同样的词。
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as",
		"is", "are", "was", "were", "be", "been", "being",
		"it", "this", "that", "these", "those", "from", "up", "down",
		"over", "under", "again", "further", "than", "so", "such",
		"into", "about", "between", "through", "during", "before",
		"after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "should", "now",
		"i", "my", "me", "we", "our", "you", "your", "he", "she",
		"they", "them", "their", "what", "which", "who", "have",
		"has", "had", "do", "does", "did", "not", "no", "all", "any",
		"each", "both", "more", "most", "other", "some", "only",
		"want", "would", "like",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

// Tokenize 把任意文本切分为参与匹配的词项：
// 小写化，按非字母数字边界切分，丢弃空词与停用词。
// 语料与查询必须走同一个分词器，词表才对得上。
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// termCounts 统计一段文本分词后每个词项的原始词频。
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}
	return counts
}
