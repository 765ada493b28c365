package bind_group_provider

// BufferWrite describes one queued write into a provider's uniform buffer.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
