package assistant

// clinicPhone is the human fallback channel quoted in failure replies.
const clinicPhone = "+20 2 1234-5678"

// User-facing replies, Egyptian Arabic to match the assistant persona.
const (
	replyClarify        = "آسف، حصل خطأ في فهم طلبك. ممكن توضح أكتر؟"
	replyModelDown      = "آسف، حصل عطل عندي دلوقتي. ممكن تجرب تاني بعد شوية أو تكلم العيادة على " + clinicPhone + "."
	replyMissingFields  = "معلش، محتاج الاسم والتاريخ عشان أقدر أساعدك في طلب حجز الميعاد. ممكن توضح أكتر؟"
	replyBadDate        = "معلش، صيغة التاريخ مش مظبوطة. ياريت تبعت التاريخ بصيغة سنة-شهر-يوم (YYYY-MM-DD) زي 2025-07-15."
	replyPastDate       = "معلش، التاريخ اللي طلبته فات. ممكن تختار تاريخ في المستقبل؟"
	replyStoreError     = "آسف، حصل مشكلة في تسجيل الميعاد. ممكن تكلم العيادة على طول على الرقم ده: " + clinicPhone
	replyListError      = "آسف، مش قادر أجيب المواعيد دلوقتي. ممكن تكلم العيادة على " + clinicPhone + "."
	replyNoAppointments = "مفيش مواعيد متسجلة حاليًا."
	replyListHeader     = "المواعيد المتسجلة حاليًا:"
	replyMediaError     = "معلش، مش قادر أسمع الرسالة الصوتية دلوقتي. ممكن تكتب طلبك؟"
)

// replyBookedFmt takes the name and the date string. The booking is a request,
// not a confirmed slot, hence the call-to-confirm disclaimer.
const replyBookedFmt = "تمام يا فندم، تم تسجيل طلب حجز ميعاد باسم %s يوم %s. الحجز مش مؤكد لحد ما العيادة تتواصل معاك، وللتأكيد ممكن تكلمهم على " + clinicPhone + "."
