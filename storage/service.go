package storage

// Service resolves a storage configuration and runs a FileStore operation in
// one call. Resolution failures are returned as failed results.
type Service struct {
	Resolver *Resolver
	Store    *FileStore
}

func NewService(dirs DirectoryProvider, opts ...Option) *Service {
	return &Service{
		Resolver: NewResolver(dirs),
		Store:    NewFileStore(opts...),
	}
}

func (s *Service) EnsureFile(config StorageConfig, fileName string) OperationResult {
	return s.with(config, fileName, s.Store.EnsureFile)
}

func (s *Service) WriteText(config StorageConfig, fileName, text string, opts ...TextOption) OperationResult {
	return s.with(config, fileName, func(loc ResolvedLocation) OperationResult {
		return s.Store.WriteText(loc, text, opts...)
	})
}

func (s *Service) ReadText(config StorageConfig, fileName string, opts ...TextOption) OperationResult {
	return s.with(config, fileName, func(loc ResolvedLocation) OperationResult {
		return s.Store.ReadText(loc, opts...)
	})
}

func (s *Service) WriteBinary(config StorageConfig, fileName string, data []byte) OperationResult {
	return s.with(config, fileName, func(loc ResolvedLocation) OperationResult {
		return s.Store.WriteBinary(loc, data)
	})
}

func (s *Service) ReadBinary(config StorageConfig, fileName string) OperationResult {
	return s.with(config, fileName, s.Store.ReadBinary)
}

func (s *Service) Remove(config StorageConfig, fileName string) OperationResult {
	return s.with(config, fileName, s.Store.Remove)
}

func (s *Service) with(config StorageConfig, fileName string, fn func(ResolvedLocation) OperationResult) OperationResult {
	loc, err := s.Resolver.Resolve(config, fileName)
	if err != nil {
		result := Failed("resolve", fileName, err)
		recordOperation("resolve", result)
		return result
	}
	return fn(loc)
}
