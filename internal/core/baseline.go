package core

import "sort"

// Baseline 校验基准：哈希表计数 + 全量排序取 top-k。
// 正确性一目了然，TopK O(n log n)，只服务于校验与测试。
type Baseline struct {
	counts map[FlowID]int
	items  []RankItem // 排序缓冲，摊销分配
}

func NewBaseline() *Baseline {
	return &Baseline{counts: make(map[FlowID]int, 1024)}
}

func (b *Baseline) Append(id FlowID) {
	b.counts[id]++
}

func (b *Baseline) Expire(id FlowID) {
	c, ok := b.counts[id]
	if !ok {
		panic("core: expire of untracked flow " + id)
	}
	if c <= 1 {
		delete(b.counts, id)
		return
	}
	b.counts[id] = c - 1
}

func (b *Baseline) TopK(k int) []RankItem {
	return b.AppendTopK(nil, k)
}

// AppendTopK 计数降序，同计数按流 ID 降序定序
func (b *Baseline) AppendTopK(dst []RankItem, k int) []RankItem {
	if k <= 0 || len(b.counts) == 0 {
		return dst
	}
	b.items = b.items[:0]
	for id, c := range b.counts {
		b.items = append(b.items, RankItem{FlowID: id, Count: c})
	}
	sort.Slice(b.items, func(i, j int) bool {
		if b.items[i].Count != b.items[j].Count {
			return b.items[i].Count > b.items[j].Count
		}
		return b.items[i].FlowID > b.items[j].FlowID
	})
	if k > len(b.items) {
		k = len(b.items)
	}
	return append(dst, b.items[:k]...)
}

func (b *Baseline) Counts() map[FlowID]int {
	out := make(map[FlowID]int, len(b.counts))
	for id, c := range b.counts {
		out[id] = c
	}
	return out
}

func (b *Baseline) Len() int { return len(b.counts) }
