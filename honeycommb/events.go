package honeycommb

/* The fixed event taxonomy Honeycommb delivers, grouped by domain
 * object. Post, payment, group and interaction groups are received and
 * acknowledged but deliberately not persisted yet
 */
const (
	// User events
	UserCreated   = "user.created"
	UserUpdated   = "user.updated"
	UserDestroyed = "user.destroyed"
	UserApproved  = "user.approved"
	UserFlagged   = "user.flagged"

	// Post events
	PostCreated   = "post.created"
	PostUpdated   = "post.updated"
	PostDestroyed = "post.destroyed"
	PostFeatured  = "post.featured"
	PostFlagged   = "post.flagged"

	// Event events
	EventCreated       = "event.created"
	EventUpdated       = "event.updated"
	EventDestroyed     = "event.destroyed"
	EventRSVPCreated   = "event.rsvp.created"
	EventRSVPUpdated   = "event.rsvp.updated"
	EventRSVPDestroyed = "event.rsvp.destroyed"

	// Payment events
	PaymentCompleted     = "payment.completed"
	PaymentFailed        = "payment.failed"
	SubscriptionUpdated  = "billing.subscription.updated"
	SubscriptionCanceled = "billing.subscription.canceled"
	SubscriptionRestored = "billing.subscription.recurring_payment_restored"

	// Group events
	GroupJoinRequestCreated = "group.join_request.created"
	GroupJoinRequestUpdated = "group.join_request.updated"
	GroupChatMessageCreated = "group.chat_message.created"

	// Interaction events
	LikeCreated     = "like.created"
	LikeDestroyed   = "like.destroyed"
	FollowCreated   = "follow.created"
	FollowDestroyed = "follow.destroyed"
)
