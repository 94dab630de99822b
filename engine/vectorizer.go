package engine

import (
	"math"
	"sort"
)

// Vector 是稀疏向量：词表下标 -> 权重。
// 经过 L2 归一化的非负向量两两点积即余弦相似度，取值 [0,1]。
type Vector map[int]float64

// Dot 计算两个稀疏向量的点积，只遍历较小一侧的非零下标。
// 按下标升序累加：浮点加法不满足结合律，若跟随 map 的随机遍历顺序，
// 同一对向量每次点积会在最后一个 ulp 上抖动，并列分数的排序随之漂移。
func (v Vector) Dot(o Vector) float64 {
	if len(o) < len(v) {
		v, o = o, v
	}
	var dot float64
	for _, idx := range v.sortedIndices() {
		dot += v[idx] * o[idx]
	}
	return dot
}

func (v Vector) sortedIndices() []int {
	idxs := make([]int, 0, len(v))
	for idx := range v {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}

// Vectorizer 把任意文本投影到冻结的 (词表, IDF) 空间。
// 训练完成后 vocab 与 idf 均只读，任意多个请求可并发调用 Vector。
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// Vector 生成一段文本的 TF-IDF 向量：
// 原始词频 × idf，再整体 L2 归一化。词表外的词项直接丢弃（词表永不增长）。
// 没有任何词项命中词表时返回零向量——这是合法的退化结果而非错误，
// 它与一切向量的相似度都是 0。
func (vz *Vectorizer) Vector(text string) Vector {
	return vz.fromCounts(termCounts(text))
}

// fromCounts 基于已统计好的词频构建向量，训练期复用首遍分词结果。
func (vz *Vectorizer) fromCounts(counts map[string]int) Vector {
	vec := make(Vector, len(counts))
	for term, count := range counts {
		idx, ok := vz.vocab[term]
		if !ok {
			continue
		}
		vec[idx] = float64(count) * vz.idf[idx]
	}

	// 范数同样按下标升序累加，保证相同词频输入产出逐位相同的向量。
	var norm float64
	for _, idx := range vec.sortedIndices() {
		w := vec[idx]
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}
