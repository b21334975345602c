package commands

const helpText = `🤖 JagahVA Bot Commands:

🎯 !setgoals <goals> - Set your goals
   Example: !setgoals workout 3 times a week, read daily

📅 !setday <day> <tasks> - Set day-specific tasks
   Example: !setday Monday Gym, Team meeting

📅 !setdate <date> <tasks> - Set date-specific tasks
   Example: !setdate 21 October 2025 Wish Eniola Happy Birthday

📅 !today - Get today's task list
📅 !tomorrow - Get tomorrow's task list

🎯 !listgoals - List all your current goals
📝 !addtask <task> - Add a one-time task for today
✅ !complete <number> - Mark a specific task as done/undone

📊 !weekprogress - View weekly progress for all goals

📝 !progress <numbers> - Mark goals as completed
   Example: !progress 1, 2, 5

📊 !stats - View your statistics
❓ !help - Show this help message

Visit the web interface for detailed guidelines!`

const affirmationsText = `🌟 Daily Affirmations

Forgiveness

I release all guilt, shame, and regret.

I forgive myself and others, and I walk in peace.

Every day is a fresh start.

Gratitude

I am thankful for life, health, and strength.

My heart is full of gratitude for every blessing, big and small.

Each day I see new reasons to be thankful.

Guidance

I trust God to guide my steps today.

I walk in wisdom and clarity.

I make choices that align with my higher purpose.

Protection

I am covered, protected, and safe.

No weapon formed against me shall prosper.

I move through life with confidence, not fear.

Provision

I live in abundance and lack nothing.

Opportunities, resources, and blessings flow to me.

I trust that all my needs are being met.

Strength & Purpose

I am strong, resilient, and capable.

Challenges make me wiser and stronger.

I walk in purpose, and my life has meaning.

Surrender

I let go of worry and trust God fully.

I am open to new blessings and divine direction.

My life unfolds exactly as it should.`

const prayerText = `🌅 Daily Prayer

Heavenly Father,
I come before You today with a humble heart.

🙏 Forgiveness
Please forgive me for my sins — in thought, word, and deed. Cleanse me from anything that separates me from You. Help me to forgive others as You forgive me.

🙌 Gratitude
Thank You for the gift of life, for breath in my lungs, for strength, and for every blessing seen and unseen. I am grateful for family, friends, opportunities, and even the challenges that shape me.

✨ Guidance
Lord, direct my steps today. Order my thoughts, my actions, and my decisions. Let Your wisdom guide me and keep me from walking in my own understanding.

🛡️ Protection
Surround me, my loved ones, and all connected to me with Your hedge of protection. Keep us safe from harm, evil, and danger. Guard my mind from fear and doubt, and fill me with peace.

💰 Provision
You are my provider, Jehovah Jireh. Meet my needs according to Your riches in glory. Help me to trust You with my finances, my work, my health, and my future.

💡 Strength & Purpose
Give me strength to face challenges with courage, patience to endure trials, and faith to keep believing. Remind me of my purpose, and use me as a vessel to bless others today.

🙇 Surrender
Lord, I surrender my plans, worries, and desires to You. Let Your will be done in my life. Fill me with Your Spirit and let Your love flow through me.

In Jesus' Name I pray,
Amen.`
