package user

// SubscriptionInfo is the account's subscription and quota state.
type SubscriptionInfo struct {
	Tier                           string              `json:"tier"`
	CharacterCount                 int                 `json:"character_count"`
	CharacterLimit                 int                 `json:"character_limit"`
	CanExtendCharacterLimit        bool                `json:"can_extend_character_limit"`
	AllowedToExtendCharacterLimit  bool                `json:"allowed_to_extend_character_limit"`
	NextCharacterCountResetUnix    int64               `json:"next_character_count_reset_unix"`
	VoiceLimit                     int                 `json:"voice_limit"`
	MaxVoiceAddEdits               int                 `json:"max_voice_add_edits"`
	VoiceAddEditCounter            int                 `json:"voice_add_edit_counter"`
	ProfessionalVoiceLimit         int                 `json:"professional_voice_limit"`
	CanExtendVoiceLimit            bool                `json:"can_extend_voice_limit"`
	CanUseInstantVoiceCloning      bool                `json:"can_use_instant_voice_cloning"`
	CanUseProfessionalVoiceCloning bool                `json:"can_use_professional_voice_cloning"`
	Currency                       string              `json:"currency"`
	Status                         string              `json:"status"`
	BillingPeriod                  string              `json:"billing_period"`
	NextInvoice                    *NextInvoiceDetails `json:"next_invoice"`
	HasOpenInvoices                bool                `json:"has_open_invoices"`
}

// RemainingCharacters is CharacterLimit minus CharacterCount, floored at zero.
func (s SubscriptionInfo) RemainingCharacters() int {
	return max(s.CharacterLimit-s.CharacterCount, 0)
}

// NextInvoiceDetails is the upcoming invoice. Free tiers have none.
type NextInvoiceDetails struct {
	AmountDueCents         int   `json:"amount_due_cents"`
	NextPaymentAttemptUnix int64 `json:"next_payment_attempt_unix"`
}

// UserInfo is the account profile.
type UserInfo struct {
	Subscription                SubscriptionInfo `json:"subscription"`
	IsNewUser                   bool             `json:"is_new_user"`
	XIAPIKey                    string           `json:"xi_api_key"`
	CanUseDelayedPaymentMethods bool             `json:"can_use_delayed_payment_methods"`
	IsOnboardingCompleted       bool             `json:"is_onboarding_completed"`
	FirstName                   *string          `json:"first_name,omitempty"`
}
