package engine

import (
	"math"

	"github.com/rushteam/mentorkit/core"
)

// Model 是一次训练产出的全部只读状态：词表、IDF 权重、语料向量矩阵。
// 三者同生共死，Matrix 与语料按下标 1:1 对应。
type Model struct {
	vocab  map[string]int // 词项 -> 稠密下标，首见顺序分配
	idf    []float64      // 与词表下标对齐
	matrix []Vector       // 语料序的文档向量
}

// BuildModel 对语料做单遍训练：分词、统计 df、分配词表下标、
// 计算 IDF、构建语料矩阵。
//
// IDF 采用平滑公式 idf[t] = ln((1+N)/(1+df[t])) + 1，
// 保证任意 df 下 idf > 0。
//
// 语料为空、或所有文档分词后词表为空时返回 EmptyCorpusError，
// 不允许留下退化的训练态。
func BuildModel(corpus []core.Mentor) (*Model, error) {
	if len(corpus) == 0 {
		return nil, core.NewEmptyCorpusError("corpus: no documents to train on")
	}

	m := &Model{
		vocab:  make(map[string]int),
		matrix: make([]Vector, len(corpus)),
	}

	// 首遍：每篇文档的词频 + 全局 df（每词每文档只计一次）。
	// 按分词流的原始顺序走词项，词表下标严格按全局首见顺序分配；
	// 若改为遍历词频 map，下标分配会随 map 迭代顺序逐次漂移。
	docCounts := make([]map[string]int, len(corpus))
	df := make([]int, 0, 256)
	for i, mentor := range corpus {
		tokens := Tokenize(mentor.FeatureText)
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			if _, ok := m.vocab[tok]; !ok {
				m.vocab[tok] = len(m.vocab)
				df = append(df, 0)
			}
			if counts[tok] == 0 {
				df[m.vocab[tok]]++
			}
			counts[tok]++
		}
		docCounts[i] = counts
	}

	if len(m.vocab) == 0 {
		return nil, core.NewEmptyCorpusError("corpus: vocabulary is empty after tokenization")
	}

	n := float64(len(corpus))
	m.idf = make([]float64, len(df))
	for idx, count := range df {
		m.idf[idx] = math.Log((1+n)/(1+float64(count))) + 1
	}

	// 语料矩阵：复用首遍词频，经同一套加权/归一化逻辑。
	vz := m.Vectorizer()
	for i, counts := range docCounts {
		m.matrix[i] = vz.fromCounts(counts)
	}

	return m, nil
}

// Vectorizer 返回绑定在冻结词表与 IDF 上的向量化器。
func (m *Model) Vectorizer() *Vectorizer {
	return &Vectorizer{vocab: m.vocab, idf: m.idf}
}

// VocabSize 返回词表大小。
func (m *Model) VocabSize() int { return len(m.vocab) }

// DocVector 返回第 i 篇语料文档的向量。
func (m *Model) DocVector(i int) Vector { return m.matrix[i] }

// Docs 返回语料文档数。
func (m *Model) Docs() int { return len(m.matrix) }
