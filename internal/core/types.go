package core

type FlowID = string

type RankItem struct {
	FlowID FlowID `json:"flow_id"`
	Count  int    `json:"count"`
}

// Counter 重流统计算法的统一接口
type Counter interface {
	Append(id FlowID)
	Expire(id FlowID)
	TopK(k int) []RankItem
	// AppendTopK 把 top-k 追加到 dst，便于调用方摊销分配
	AppendTopK(dst []RankItem, k int) []RankItem
	// Counts 导出当前 {flow -> count}，校验器与测试用
	Counts() map[FlowID]int
	Len() int
}

// Nop 不做任何统计，用于测量队列本身的开销
type Nop struct{}

func (Nop) Append(FlowID)                               {}
func (Nop) Expire(FlowID)                               {}
func (Nop) TopK(int) []RankItem                         { return nil }
func (Nop) AppendTopK(dst []RankItem, _ int) []RankItem { return dst }
func (Nop) Counts() map[FlowID]int                      { return nil }
func (Nop) Len() int                                    { return 0 }

var (
	_ Counter = (*Ranked)(nil)
	_ Counter = (*Baseline)(nil)
	_ Counter = Nop{}
)
