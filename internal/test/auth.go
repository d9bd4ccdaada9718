package test

// HasherStub provides deterministic password hashing for tests.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

// Hash returns "hash:<password>" unless overridden.
func (s HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare succeeds when the hash matches the stub encoding.
func (s HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errMismatch
	}
	return nil
}

// StrategyStub implements the token strategy with injectable behaviour.
type StrategyStub struct {
	IssueFn func(userID int64) (string, error)
	ParseFn func(token string) (int64, error)
}

// IssueToken delegates to IssueFn or returns a static token.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken delegates to ParseFn or accepts any token as user 1.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string { return "stub" }

// TokenParserStub satisfies the auth middleware token parser.
type TokenParserStub struct {
	ID  int64
	Err error
}

// ParseToken returns the configured identifier or error.
func (s TokenParserStub) ParseToken(string) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}
