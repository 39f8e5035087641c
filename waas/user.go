package waas

import "context"

// UserInfo describes a custodial user account.
type UserInfo struct {
	// UID is the platform-assigned user ID.
	UID int64 `json:"uid"`
	// AuthLevel is the KYC authentication level.
	AuthLevel  int32  `json:"auth_level"`
	Nickname   string `json:"nickname"`
	RealName   string `json:"real_name"`
	InviteCode string `json:"invite_code"`
	Country    string `json:"country"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
}

// RegisterMobileUser registers a custodial user by mobile number.
// country is the international dialing code, for example "86".
func (c *Client) RegisterMobileUser(ctx context.Context, country, mobile string) (*UserInfo, error) {
	args := map[string]any{
		"country": country,
		"mobile":  mobile,
	}
	var out UserInfo
	if err := c.api.Post(ctx, "/user/createUser", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterEmailUser registers a custodial user by email address.
func (c *Client) RegisterEmailUser(ctx context.Context, email string) (*UserInfo, error) {
	args := map[string]any{
		"email": email,
	}
	var out UserInfo
	if err := c.api.Post(ctx, "/user/registerEmail", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMobileUser looks up a user registered by mobile number.
func (c *Client) GetMobileUser(ctx context.Context, country, mobile string) (*UserInfo, error) {
	args := map[string]any{
		"country": country,
		"mobile":  mobile,
	}
	var out UserInfo
	if err := c.api.Post(ctx, "/user/info", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEmailUser looks up a user registered by email address.
func (c *Client) GetEmailUser(ctx context.Context, email string) (*UserInfo, error) {
	args := map[string]any{
		"email": email,
	}
	var out UserInfo
	if err := c.api.Post(ctx, "/user/info", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncUsers pages through registered users. maxID is the largest user
// record ID already seen; pass 0 to start from the beginning. An empty
// result means the merchant is caught up.
func (c *Client) SyncUsers(ctx context.Context, maxID int64) ([]UserInfo, error) {
	args := map[string]any{
		"max_id": maxID,
	}
	var out []UserInfo
	if err := c.api.Post(ctx, "/user/syncList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}
