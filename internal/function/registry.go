package function

import (
	"iter"

	"fnloc/internal/model"
)

// Registry 按出现顺序保存已完成的函数记录，只追加不修改。
type Registry struct {
	records []model.FunctionRecord
}

// Append 追加一条记录。
func (r *Registry) Append(record model.FunctionRecord) {
	r.records = append(r.records, record)
}

// Len 返回记录数量。
func (r *Registry) Len() int {
	return len(r.records)
}

// All 按插入顺序遍历全部记录，可重复遍历。
func (r *Registry) All() iter.Seq[model.FunctionRecord] {
	return func(yield func(model.FunctionRecord) bool) {
		for _, record := range r.records {
			if !yield(record) {
				return
			}
		}
	}
}

// Records 返回记录切片的副本。
func (r *Registry) Records() []model.FunctionRecord {
	return append(make([]model.FunctionRecord, 0, len(r.records)), r.records...)
}
