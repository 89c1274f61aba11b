package core

// Entity identifies a speaki across all component stores
// Zero is never issued and means "no entity"
type Entity uint64

// None is the absent entity
const None Entity = 0
